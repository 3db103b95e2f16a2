// Command probe_keys sends one short prompt through every configured API key
// and prints which ones answer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"legal-drafting-be/internal/bootstrap"
	"legal-drafting-be/internal/config"
	"legal-drafting-be/pkg/dispatch"
	"legal-drafting-be/pkg/llm"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
)

func main() {
	model := flag.String("model", "", "model to probe (default MODEL_SMALL)")
	timeout := flag.Duration("timeout", 30*time.Second, "per-key timeout")
	flag.Parse()

	cfg := config.Load()
	if *model == "" {
		*model = cfg.Ai.SmallModel
	}

	credentials, err := bootstrap.BuildCredentials(cfg.Ai)
	if err != nil {
		color.Red("❌ %v", err)
		os.Exit(1)
	}
	if len(credentials) == 0 {
		color.Red("❌ No API keys configured (GEMINI_API_KEYS or GOOGLE_GEMINI_API_KEY)")
		os.Exit(1)
	}

	color.Cyan("=== Probing %d key(s) against %s ===", len(credentials), *model)

	// one dispatcher per key so every key is tried, not just the first healthy one
	results := make([]dispatch.Result, len(credentials))
	g, ctx := errgroup.WithContext(context.Background())
	for i, cred := range credentials {
		g.Go(func() error {
			d := dispatch.NewDispatcher([]dispatch.Credential{cred}, dispatch.Models{},
				dispatch.WithTimeout(*timeout),
				dispatch.WithCallOptions(llm.WithMaxOutputTokens(16)))
			results[i] = d.DispatchModel(ctx, "Reply with the single word: ready", *model)
			return nil
		})
	}
	_ = g.Wait()

	healthy := 0
	for i, result := range results {
		label := credentials[i].Label
		if result.OK() {
			healthy++
			color.Green("✅ %-12s %.1fs", label, result.ElapsedSeconds())
			continue
		}
		kind := llm.FailureUnknown
		if len(result.Attempts) > 0 {
			kind = result.Attempts[0].Kind
		}
		color.Red("❌ %-12s %s", label, kind)
	}

	fmt.Println()
	if healthy == 0 {
		color.Yellow("⚠️  No key answered; drafts will be reported as %s", dispatch.OfflineLabel)
		os.Exit(1)
	}
	color.Green("%d/%d key(s) healthy", healthy, len(credentials))
}
