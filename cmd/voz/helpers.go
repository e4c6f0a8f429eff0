package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/meubolso/voz/internal/cache"
	"github.com/meubolso/voz/internal/cli"
	"github.com/meubolso/voz/internal/common"
	"github.com/meubolso/voz/internal/llm"
	"github.com/meubolso/voz/internal/query"
	"github.com/meubolso/voz/internal/service"
	"github.com/meubolso/voz/internal/session"
	"github.com/meubolso/voz/internal/storage"
)

// initStorage opens the snapshot database and applies pending migrations.
func initStorage(ctx context.Context) (*storage.SnapshotStore, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "voz", "voz.db")
	}

	store, err := storage.NewSnapshotStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}
	return store, nil
}

// buildResolver applies the configured budget alert threshold.
func buildResolver() *query.Resolver {
	return query.NewResolver(viper.GetFloat64("budget.alert_percent"))
}

// buildResponder assembles the AI fallback chain from configuration. With no
// provider configured the responder serves canned answers only.
func buildResponder() (service.Responder, func(), error) {
	client, err := llm.NewClient(llm.Config{
		Provider:    viper.GetString("ai.provider"),
		APIKey:      viper.GetString("ai.api_key"),
		Model:       viper.GetString("ai.model"),
		Temperature: viper.GetFloat64("ai.temperature"),
		MaxTokens:   viper.GetInt("ai.max_tokens"),
	})
	if err != nil {
		return nil, nil, common.NewUserError("verifique a seção ai do arquivo de configuração", err)
	}

	answerCache := cache.New(viper.GetString("cache.redis_addr"), viper.GetDuration("cache.ttl"))
	cleanup := func() { _ = answerCache.Close() }
	return llm.NewResponder(client, answerCache), cleanup, nil
}

// sessionConfig maps voice.* configuration onto the session timing profile.
// Unset values fall back to the production defaults.
func sessionConfig() session.Config {
	cfg := session.Config{
		Locale:      viper.GetString("voice.locale"),
		SpeechRate:  viper.GetFloat64("voice.rate"),
		SpeechPitch: viper.GetFloat64("voice.pitch"),
	}
	if ms := viper.GetInt("voice.debounce_ms"); ms > 0 {
		cfg.DebounceDelay = time.Duration(ms) * time.Millisecond
	}
	return cfg
}

// printNavigator is the terminal navigation sink: instead of switching
// screens it reports where the app would go and with which prefill.
type printNavigator struct{}

func (printNavigator) Navigate(target string, prefill any) {
	if prefill == nil {
		fmt.Println(cli.FormatInfo("Navegando para " + target))
		return
	}
	fmt.Println(cli.FormatInfo(fmt.Sprintf("Navegando para %s com %+v", target, prefill)))
}
