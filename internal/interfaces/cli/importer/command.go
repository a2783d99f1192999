package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faena-hq/faena/internal/application/roster/dto"
	rosterusecases "github.com/faena-hq/faena/internal/application/roster/usecases"
	"github.com/faena-hq/faena/internal/infrastructure/config"
	"github.com/faena-hq/faena/internal/infrastructure/database"
	"github.com/faena-hq/faena/internal/infrastructure/repository"
	"github.com/faena-hq/faena/internal/shared/biztime"
	"github.com/faena-hq/faena/internal/shared/db"
	"github.com/faena-hq/faena/internal/shared/logger"
)

var (
	env      string
	filePath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a roster export",
		Long: `Import a denormalized roster export (CSV) and derive workers, job titles,
cycles, assignments and requirements from it. Re-running the same file is a
no-op: every derived record is keyed by its natural key.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the roster CSV file (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	rows, err := readRosterFile(filePath)
	if err != nil {
		return err
	}

	log := logger.NewLogger()
	gormDB := database.Get()

	deriveUC := rosterusecases.NewDeriveRequirementsUseCase(
		repository.NewProjectRepository(gormDB, log),
		repository.NewCompanyRepository(gormDB, log),
		repository.NewContractRepository(gormDB, log),
		repository.NewCycleRepository(gormDB, log),
		repository.NewRequirementRepository(gormDB, log),
		repository.NewAssignmentRepository(gormDB, log),
		repository.NewWorkerRepository(gormDB, log),
		repository.NewJobTitleRepository(gormDB, log),
		db.NewTransactionManager(gormDB),
		rosterusecases.NoopPanelCache(),
		log,
	)

	result, err := deriveUC.Execute(context.Background(), rosterusecases.DeriveRequirementsCommand{Rows: rows})
	if err != nil {
		return fmt.Errorf("roster import failed: %w", err)
	}

	summary := result.Summary
	log.Infow("roster import completed",
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"workers_created", summary.WorkersCreated,
		"job_titles_created", summary.JobTitlesCreated)

	return nil
}

// readRosterFile parses a roster CSV into rows. Columns are matched by
// header name, so column order in the export does not matter.
func readRosterFile(path string) ([]dto.RosterRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read roster header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []dto.RosterRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster row %d: %w", len(rows)+2, err)
		}

		rows = append(rows, dto.RosterRow{
			ProjectName:  field(record, "project_name"),
			CompanyName:  field(record, "company_name"),
			CycleLetter:  field(record, "cycle_letter"),
			CycleStart:   field(record, "cycle_start"),
			CycleEnd:     field(record, "cycle_end"),
			Shift:        field(record, "shift"),
			JobTitleName: field(record, "job_title_name"),
			NationalID:   field(record, "national_id"),
			FirstNames:   field(record, "first_names"),
			LastNames:    field(record, "last_names"),
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("roster file %s contains no data rows", path)
	}

	return rows, nil
}
