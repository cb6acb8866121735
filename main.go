// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/tidwall/pretty"

	"github.com/meiliops/indexctl/client"
	"github.com/meiliops/indexctl/config"
	"github.com/meiliops/indexctl/settings"
)

var version = "dev"

func main() {
	fs := pflag.NewFlagSet("indexctl", pflag.ExitOnError)
	fs.Usage = usage

	showVersion := fs.Bool("version", false, "Print version information.")
	documentPath := fs.StringP("file", "f", "", "Path to a YAML settings document (for apply)")
	config.RegisterFlags(fs)

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	setLogLevel(cfg.Log.Level)

	if err := run(cfg, fs.Args(), *documentPath); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: indexctl [flags] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  get [group]    Print the settings document or one group")
	fmt.Println("  apply -f FILE  Apply a sparse settings document and wait for the task")
	fmt.Println("  reset [group]  Reset all settings or one group and wait for the task")
	fmt.Println("  watch          Export settings metrics until interrupted")
	fmt.Println()
	fmt.Println("Groups: synonyms, stop-words, ranking-rules, filterable-attributes,")
	fmt.Println("  sortable-attributes, distinct-attribute, searchable-attributes,")
	fmt.Println("  displayed-attributes, pagination, faceting, typo-tolerance")
	fmt.Println()
	fmt.Println("Flags:")
	pflag.PrintDefaults()
}

func printVersion() {
	fmt.Println("indexctl")
	fmt.Printf("Version: %s\n", version)
	fmt.Println("Settings control tool for Meilisearch-compatible search indexes")
}

func setLogLevel(level string) {
	l, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("unknown log level %q, using info", level)
		l = log.InfoLevel
	}
	log.SetLevel(l)
}

func run(cfg *config.Config, args []string, documentPath string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("no command given")
	}

	reg := prometheus.NewRegistry()

	opts := []client.Option{client.WithTimeout(cfg.Endpoint.Timeout)}
	if cfg.Metrics.ClientEnabled {
		opts = append(opts, client.WithMetrics(reg))
	}
	c := client.New(cfg.Endpoint.Host, cfg.Endpoint.APIKey, opts...)

	if cfg.Index.UID == "" {
		return fmt.Errorf("index.uid is required")
	}
	idx := c.Index(cfg.Index.UID)

	group := ""
	if len(args) > 1 {
		group = args[1]
	}

	switch args[0] {
	case "get":
		return runGet(idx, group)
	case "apply":
		return runApply(c, cfg, idx, documentPath)
	case "reset":
		return runReset(c, cfg, idx, group)
	case "watch":
		return runWatch(cfg, reg, idx)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runGet(idx *client.Index, group string) error {
	ctx := context.Background()

	var v any
	var err error

	switch group {
	case "":
		v, err = idx.GetSettings(ctx)
	case "synonyms":
		v, err = idx.GetSynonyms(ctx)
	case "stop-words":
		v, err = idx.GetStopWords(ctx)
	case "ranking-rules":
		v, err = idx.GetRankingRules(ctx)
	case "filterable-attributes":
		v, err = idx.GetFilterableAttributes(ctx)
	case "sortable-attributes":
		v, err = idx.GetSortableAttributes(ctx)
	case "distinct-attribute":
		v, err = idx.GetDistinctAttribute(ctx)
	case "searchable-attributes":
		v, err = idx.GetSearchableAttributes(ctx)
	case "displayed-attributes":
		v, err = idx.GetDisplayedAttributes(ctx)
	case "pagination":
		v, err = idx.GetPagination(ctx)
	case "faceting":
		v, err = idx.GetFaceting(ctx)
	case "typo-tolerance":
		v, err = idx.GetTypoTolerance(ctx)
	default:
		return fmt.Errorf("unknown settings group %q", group)
	}

	if err != nil {
		return err
	}
	return printJSON(v)
}

func runApply(c *client.Client, cfg *config.Config, idx *client.Index, documentPath string) error {
	if documentPath == "" {
		return fmt.Errorf("apply requires a settings document (-f FILE)")
	}

	s, err := loadSettingsDocument(documentPath)
	if err != nil {
		return err
	}

	info, err := idx.UpdateSettings(context.Background(), s)
	if err != nil {
		return err
	}

	log.Infof("settings update for index %q accepted as task %d", idx.UID(), info.TaskUID)
	return awaitTask(c, cfg, info)
}

func runReset(c *client.Client, cfg *config.Config, idx *client.Index, group string) error {
	ctx := context.Background()

	var info *client.TaskInfo
	var err error

	switch group {
	case "":
		info, err = idx.ResetSettings(ctx)
	case "synonyms":
		info, err = idx.ResetSynonyms(ctx)
	case "stop-words":
		info, err = idx.ResetStopWords(ctx)
	case "ranking-rules":
		info, err = idx.ResetRankingRules(ctx)
	case "filterable-attributes":
		info, err = idx.ResetFilterableAttributes(ctx)
	case "sortable-attributes":
		info, err = idx.ResetSortableAttributes(ctx)
	case "distinct-attribute":
		info, err = idx.ResetDistinctAttribute(ctx)
	case "searchable-attributes":
		info, err = idx.ResetSearchableAttributes(ctx)
	case "displayed-attributes":
		info, err = idx.ResetDisplayedAttributes(ctx)
	case "pagination":
		info, err = idx.ResetPagination(ctx)
	case "faceting":
		info, err = idx.ResetFaceting(ctx)
	case "typo-tolerance":
		info, err = idx.ResetTypoTolerance(ctx)
	default:
		return fmt.Errorf("unknown settings group %q", group)
	}

	if err != nil {
		return err
	}

	log.Infof("reset of %q accepted as task %d", idx.UID(), info.TaskUID)
	return awaitTask(c, cfg, info)
}

func awaitTask(c *client.Client, cfg *config.Config, info *client.TaskInfo) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Task.Timeout)
	defer cancel()

	t, err := c.WaitForTask(ctx, info, cfg.Task.PollInterval)
	if err != nil {
		return err
	}
	if t.Error != nil {
		return t.Error
	}

	log.Infof("task %d finished: %s", t.UID, t.Status)
	return nil
}

// loadSettingsDocument reads a YAML document using the wire-format keys
// (stopWords, typoTolerance, ...). Going through JSON keeps absent keys
// absent and explicit nulls explicit, so the document stays a faithful
// partial update.
func loadSettingsDocument(path string) (settings.Settings, error) {
	var s settings.Settings

	b, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings document: %w", err)
	}

	doc, err := yaml.Parser().Unmarshal(b)
	if err != nil {
		return s, fmt.Errorf("parse settings document: %w", err)
	}

	j, err := json.Marshal(doc)
	if err != nil {
		return s, fmt.Errorf("convert settings document: %w", err)
	}
	if err := json.Unmarshal(j, &s); err != nil {
		return s, fmt.Errorf("decode settings document: %w", err)
	}

	return s, nil
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	os.Stdout.Write(pretty.Pretty(b))
	return nil
}
