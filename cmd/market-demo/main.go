// market-demo exercises the read paths of the market client: it fetches
// the price overview for one item and, when session credentials are
// supplied through the environment, the sale history as well.
//
// Environment (a .env file next to the binary is honored):
//
//	STEAM_SESSION_ID  the sessionid cookie value of a logged-in session
//	STEAM_ID          the 64-bit account id, required with STEAM_SESSION_ID
//	LOG_LEVEL         debug, info, warn, error (default info)
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/steamkit/gomarket/market/client"
	"github.com/steamkit/gomarket/market/types"
	"github.com/steamkit/gomarket/pkg/config"
	"github.com/steamkit/gomarket/pkg/logger"
	"github.com/steamkit/gomarket/pkg/web"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML config file")
		item       = flag.String("item", "Mann Co. Supply Crate Key", "market hash name")
		appID      = flag.String("app", "440", "application id")
		contextID  = flag.String("context", "2", "inventory context id")
		currency   = flag.Int("currency", int(types.CurrencyUSD), "wallet currency code")
		country    = flag.String("country", "", "country code, defaults from config")
	)
	flag.Parse()

	_ = godotenv.Load()
	logger.Init(logger.Config{Level: os.Getenv("LOG_LEVEL")})
	log := logger.WithComponent("market-demo")

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.WithError(err).Fatal("loading config")
		}
	}

	session, err := web.NewSession(cfg.CommunityURL, cfg.HTTPTimeout.Duration)
	if err != nil {
		log.WithError(err).Fatal("creating session")
	}

	c := client.New(session, cfg, nil, nil)
	if sessionID := os.Getenv("STEAM_SESSION_ID"); sessionID != "" {
		session.SetCookies([]*http.Cookie{
			{Name: "sessionid", Value: sessionID, Domain: types.CommunityDomain},
		})
		c.SetLoginExecuted(types.Guard{SteamID: os.Getenv("STEAM_ID")}, sessionID)
		log.Info("session context installed from environment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	game := types.GameOptions{AppID: *appID, ContextID: *contextID}
	overview, err := c.FetchPrice(ctx, *item, game, types.Currency(*currency), *country)
	if err != nil {
		log.WithError(err).Fatal("fetching price overview")
	}
	log.WithFields(map[string]any{
		"item":   *item,
		"lowest": overview.LowestPrice,
		"median": overview.MedianPrice,
		"volume": overview.Volume,
	}).Info("price overview")

	if !c.LoggedIn() {
		log.Info("no session credentials, skipping price history")
		return
	}

	history, err := c.FetchPriceHistory(ctx, *item, game)
	if err != nil {
		log.WithError(err).Fatal("fetching price history")
	}
	log.WithField("samples", len(history.Prices)).Info("price history")
	if n := len(history.Prices); n > 0 {
		last := history.Prices[n-1]
		log.WithFields(map[string]any{
			"date":   last.Date,
			"price":  last.Price,
			"volume": last.Volume,
		}).Info("latest sample")
	}
}
