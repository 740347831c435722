// Package main demonstrates how to use the contentfilter library.
//
// This example shows:
// 1. Filtering a message with the default engine
// 2. Multi-field filtering for a composed form
// 3. Wiring a SQL-backed word-list store with periodic reload
// 4. Observing reloads via hooks
// 5. Rendering flagged content per viewer
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	contentfilter "github.com/carnote/contentfilter"
	"github.com/carnote/contentfilter/dict"
	"github.com/carnote/contentfilter/hooks"
	"github.com/carnote/contentfilter/store"
	sqlstore "github.com/carnote/contentfilter/store/sql"
	"github.com/carnote/contentfilter/visibility"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

func main() {
	ctx := context.Background()

	// ============================================================
	// Step 1: Filter with the default engine
	// ============================================================
	result := contentfilter.FullFilter("你好，加我賴 abc1234 聊")
	if !result.IsValid {
		// violations[0].Message is the user-facing rejection text.
		log.Printf("rejected: %s (kind=%s, matched=%q)",
			result.FirstMessage(), result.Violations[0].Kind, result.Violations[0].Matched)
	}

	// Keystroke-level feedback only reacts to high-severity hits.
	quick := contentfilter.QuickFilter("有 line 嗎")
	log.Printf("quick filter valid: %v", quick.IsValid)

	// ============================================================
	// Step 2: Multi-field filtering
	// ============================================================
	fields := []contentfilter.FieldInput{
		{Field: "title", Text: "車燈沒關提醒"},
		{Field: "body", Text: "路過看到你的大燈還亮著，匯款到 1234567890123"},
	}
	for _, fr := range contentfilter.FilterFields(fields, contentfilter.DefaultFilterOptions()) {
		log.Printf("field %s valid=%v", fr.Field, fr.Result.IsValid)
	}

	// ============================================================
	// Step 3: SQL word-list store with periodic reload
	// ============================================================
	db, err := sql.Open("mysql", "user:password@tcp(localhost:3306)/contentfilter?parseTime=true")
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	wordStore := sqlstore.NewWithDB(db, sqlstore.DialectMySQL, "")
	defer wordStore.Close()

	holder := dict.NewHolder(dict.DefaultSnapshot())
	engine := contentfilter.New(contentfilter.Options{Words: holder})

	// ============================================================
	// Step 4: Observe reloads via hooks
	// ============================================================
	reloadHooks := hooks.FuncHooks{
		OnWordlistReloadedFunc: func(ctx context.Context, e hooks.WordlistReloadedEvent) error {
			if e.Changed() {
				log.Printf("[Hook] word lists updated from %s: %d words, version %s",
					e.Source, e.WordCount, e.NewVersion)
			}
			return nil
		},
		OnReloadFailedFunc: func(ctx context.Context, e hooks.ReloadFailedEvent) error {
			log.Printf("[Hook] reload from %s failed after %d attempts: %v",
				e.Source, e.Attempts, e.Err)
			return nil
		},
	}

	config := store.DefaultReloaderConfig()
	config.Interval = time.Minute
	config.Hooks = reloadHooks

	reloader := store.NewReloader(wordStore, holder, config)
	if err := reloader.Start(ctx); err != nil {
		// The built-in lists stay active until the store recovers.
		log.Printf("initial word-list load failed: %v", err)
	}
	defer reloader.Stop()

	// Filter calls now pick up admin-managed lists automatically.
	result = engine.FullFilter("這句話要用最新的詞庫檢查")
	log.Printf("valid: %v", result.IsValid)

	// ============================================================
	// Step 5: Render flagged content per viewer
	// ============================================================
	renderer := visibility.NewRenderer()
	flagged := engine.FullFilter("有事打0912345678")

	authorView := renderer.Render(visibility.FieldMessage, visibility.ViewerAuthor, flagged)
	log.Printf("author sees: %q (%s)", authorView.Value, authorView.Message)

	recipientView := renderer.Render(visibility.FieldMessage, visibility.ViewerRecipient, flagged)
	log.Printf("recipient sees: %q", recipientView.Value)
}
