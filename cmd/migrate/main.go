package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hisabkitab/migrate/internal/backup"
	"github.com/hisabkitab/migrate/internal/config"
	"github.com/hisabkitab/migrate/internal/convert"
	"github.com/hisabkitab/migrate/internal/mapping"
	"github.com/hisabkitab/migrate/internal/source"
	"github.com/hisabkitab/migrate/internal/storage"
	"github.com/hisabkitab/migrate/pkg/logger"
)

func main() {
	cfg := config.Load()

	app := &cli.App{
		Name:  "hisab-migrate",
		Usage: "Convert purchase and master data exports into the HisabKitab-Pro import format",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   cfg.App.LogLevel,
				EnvVars: []string{"APP_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetLevel(c.String("log-level"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "purchases",
				Usage: "Convert purchase line-item exports (CSV/XLSX) into purchase and supplier records",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Input file (repeatable); .xlsx inputs read the first sheet",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output JSON file (single input only; defaults to <input>_migration.json in the output dir)",
					},
					newCompanyIDFlag(cfg),
					newMappingFileFlag(cfg),
					newUploadFlag(),
				},
				Action: runPurchases,
			},
			{
				Name:  "entities",
				Usage: "Convert master data (products, customers, suppliers, categories) from a CSV file or database table",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "entity",
						Aliases:  []string{"e"},
						Usage:    "Entity type: products, customers, suppliers or categories",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Input CSV file (keyed by header labels)",
					},
					&cli.StringFlag{
						Name:    "db-url",
						Usage:   "Database connection string (use with --table)",
						EnvVars: []string{"DATABASE_URL"},
					},
					&cli.StringFlag{
						Name:  "table",
						Usage: "Table name to read when using --db-url",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output JSON file",
					},
					newCompanyIDFlag(cfg),
					newMappingFileFlag(cfg),
					newUploadFlag(),
				},
				Action: runEntities,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("conversion failed")
	}
}

func newCompanyIDFlag(cfg *config.Config) *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "company-id",
		Usage:   "Company ID stamped on imported records",
		Value:   cfg.App.CompanyID,
		EnvVars: []string{"APP_COMPANY_ID"},
	}
}

func newMappingFileFlag(cfg *config.Config) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "mapping-file",
		Usage:   "YAML file overriding the built-in column mapping tables",
		Value:   cfg.App.MappingFile,
		EnvVars: []string{"APP_MAPPING_FILE"},
	}
}

func newUploadFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "upload",
		Usage: "Upload the produced JSON to the configured object storage",
	}
}

func runPurchases(c *cli.Context) error {
	cfg := config.Load()
	inputs := c.StringSlice("input")
	if c.String("output") != "" && len(inputs) > 1 {
		return fmt.Errorf("--output can only be used with a single --input")
	}

	tables, err := mapping.LoadOrBuiltin(c.String("mapping-file"))
	if err != nil {
		return err
	}
	table, err := tables.Lookup(mapping.EntityPurchases)
	if err != nil {
		return err
	}

	// Files convert concurrently; aggregation within a file stays strictly
	// ordered because supplier and purchase identity is first-seen-wins.
	g, ctx := errgroup.WithContext(c.Context)
	for _, input := range inputs {
		input := input
		g.Go(func() error {
			output := c.String("output")
			if output == "" {
				output = defaultOutput(cfg, input, "_migration.json")
			}
			return convertPurchaseFile(ctx, cfg, c, table, input, output)
		})
	}
	return g.Wait()
}

func convertPurchaseFile(ctx context.Context, cfg *config.Config, c *cli.Context, table mapping.Table, input, output string) error {
	log := logger.Log.With().Str("input", input).Logger()

	data, err := readPositional(input)
	if err != nil {
		return err
	}
	log.Info().Int("columns", len(data.Headers)).Int("rows", len(data.Rows)).Msg("read input")

	converter := convert.NewPurchaseConverter(data.Headers, table, c.Int("company-id"), cfg.App.CreatedBy, log)
	stats := converter.Process(data.Rows)

	doc := backup.New("csv_purchase_converter")
	doc.Data.Suppliers = converter.Suppliers()
	doc.Data.Purchases = converter.Purchases()

	if err := doc.WriteFile(output); err != nil {
		return err
	}

	log.Info().
		Int("suppliers", len(doc.Data.Suppliers)).
		Int("purchases", len(doc.Data.Purchases)).
		Int("accepted", stats.Accepted).
		Int("skipped_insufficient_columns", stats.SkippedInsufficientColumns).
		Int("skipped_missing_key_fields", stats.SkippedMissingKeyFields).
		Int("skipped_errors", stats.SkippedErrors).
		Str("output", output).
		Msg("conversion complete")

	return uploadIfRequested(ctx, cfg, c, output)
}

func runEntities(c *cli.Context) error {
	cfg := config.Load()
	log := logger.Log

	entity := c.String("entity")
	tables, err := mapping.LoadOrBuiltin(c.String("mapping-file"))
	if err != nil {
		return err
	}
	table, err := tables.Lookup(entity)
	if err != nil {
		return err
	}

	var data *source.Keyed
	switch {
	case c.String("db-url") != "":
		data, err = source.ReadTable(c.Context, c.String("db-url"), c.String("table"))
	case c.String("input") != "":
		data, err = source.ReadKeyedCSVFile(c.String("input"))
	default:
		return fmt.Errorf("either --input or --db-url is required")
	}
	if err != nil {
		return err
	}
	log.Info().Str("entity", entity).Int("rows", len(data.Rows)).Msg("read input")

	converter := convert.NewEntityConverter(c.Int("company-id"), log)
	doc := backup.New("sql_migration")

	var count int
	switch entity {
	case mapping.EntityProducts:
		doc.Data.Products = converter.Products(data.Keys, data.Rows, table)
		count = len(doc.Data.Products)
	case mapping.EntityCustomers:
		doc.Data.Customers = converter.Customers(data.Keys, data.Rows, table)
		count = len(doc.Data.Customers)
	case mapping.EntitySuppliers:
		doc.Data.Suppliers = converter.Suppliers(data.Keys, data.Rows, table)
		count = len(doc.Data.Suppliers)
	case mapping.EntityCategories:
		doc.Data.Categories = converter.Categories(data.Keys, data.Rows, table)
		count = len(doc.Data.Categories)
	default:
		return fmt.Errorf("unsupported entity type %q", entity)
	}

	output := c.String("output")
	if output == "" {
		output = filepath.Join(cfg.App.OutputDir, "migration_output.json")
	}
	if err := doc.WriteFile(output); err != nil {
		return err
	}

	log.Info().Str("entity", entity).Int("converted", count).Str("output", output).Msg("conversion complete")
	return uploadIfRequested(c.Context, cfg, c, output)
}

func uploadIfRequested(ctx context.Context, cfg *config.Config, c *cli.Context, output string) error {
	if !c.Bool("upload") {
		return nil
	}

	client, err := storage.NewMinioClient(cfg.Storage)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(output)
	if err != nil {
		return fmt.Errorf("failed to read %s for upload: %w", output, err)
	}
	key := filepath.Base(output)
	if err := client.UploadObject(ctx, key, data); err != nil {
		return err
	}
	logger.Log.Info().Str("key", key).Msg("uploaded output")
	return nil
}

func readPositional(path string) (*source.Positional, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return source.ReadXLSXFile(path)
	}
	return source.ReadCSVFile(path)
}

func defaultOutput(cfg *config.Config, input, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(cfg.App.OutputDir, base+suffix)
}
