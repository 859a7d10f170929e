package factory

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/playerlist/internal/model"
	"github.com/mcoot/playerlist/internal/playerlist"
	redisstorage "github.com/mcoot/playerlist/internal/storage/redis"
)

const (
	cheaterID model.SteamID = 76561197960287930
	botID     model.SteamID = 76561198012345678
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
}

// Test: a session marks players, tracks names, saves, and a restart sees it all
func (s *IntegrationSuite) TestSessionSurvivesRestart() {
	store := s.app.Store

	// Step 1: Mark a cheater and a bot
	store.SetVerdict(cheaterID, model.VerdictCheater)
	store.SetCustomData(cheaterID, map[string]any{"note": "spinbot"})
	store.SetVerdict(botID, model.VerdictBot)

	// Step 2: Names are observed during play
	s.app.MockClock.Advance(time.Hour)
	store.UpdateName(cheaterID, "alpha")
	store.UpdateName(cheaterID, "beta")
	store.UpdateName(cheaterID, "alpha")
	store.UpdateName(76561197960265729, "stranger")

	// Step 3: Autosave
	store.SaveOK()
	s.True(s.app.Memory.Exists("playerlist.json"))

	// Step 4: Restart
	s.Require().NoError(s.app.Reload())

	reloaded := s.app.Store
	s.Equal(2, reloaded.Len())

	cheater, ok := reloaded.Get(cheaterID)
	s.Require().True(ok)
	s.Equal(model.VerdictCheater, cheater.Verdict)
	s.Equal([]string{"alpha", "beta"}, cheater.PreviousNames)
	s.Equal(map[string]any{"note": "spinbot"}, cheater.CustomData)
	s.Equal(s.app.MockClock.Now().Add(-time.Hour), cheater.Modified)

	bot, ok := reloaded.Get(botID)
	s.Require().True(ok)
	s.Equal(model.VerdictBot, bot.Verdict)
}

func (s *IntegrationSuite) TestFileStorage() {
	dir := s.T().TempDir()

	app, err := New(Config{ConfigDir: dir})
	s.Require().NoError(err)
	defer app.Close()

	s.Equal(filepath.Join(dir, playerlist.Filename), app.Store.Path())

	app.Store.SetVerdict(cheaterID, model.VerdictSuspicious)
	s.Require().NoError(app.Store.Save())

	again, err := New(Config{PlayerlistPath: filepath.Join(dir, playerlist.Filename)})
	s.Require().NoError(err)
	s.True(again.Store.Contains(cheaterID))
}

func (s *IntegrationSuite) TestRedisStorage() {
	mini := miniredis.RunT(s.T())
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mini.Addr()

	cfg := Config{
		PlayerlistPath: "shared.json",
		StorageType:    StorageTypeRedis,
		RedisConfig:    &redisCfg,
	}

	app, err := New(cfg)
	s.Require().NoError(err)
	app.Store.SetVerdict(botID, model.VerdictBot)
	s.Require().NoError(app.Store.Save())
	s.Require().NoError(app.Close())

	again, err := New(cfg)
	s.Require().NoError(err)
	defer again.Close()

	r, ok := again.Store.Get(botID)
	s.Require().True(ok)
	s.Equal(model.VerdictBot, r.Verdict)
}

func (s *IntegrationSuite) TestRedisCorruptValueIsUnrecoverable() {
	mini := miniredis.RunT(s.T())
	s.Require().NoError(mini.Set("playerlist:file:shared.json", "not json"))
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mini.Addr()

	_, err := New(Config{
		PlayerlistPath: "shared.json",
		StorageType:    StorageTypeRedis,
		RedisConfig:    &redisCfg,
	})

	s.ErrorIs(err, model.ErrUnrecoverable)
	got, _ := mini.Get("playerlist:file:shared.json")
	s.Equal("not json", got)
}

func (s *IntegrationSuite) TestRedisRequiresConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *IntegrationSuite) TestInvalidStorageType() {
	_, err := New(Config{StorageType: "sqlite"})
	s.Error(err)
}
