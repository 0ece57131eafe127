package main

import (
	"fmt"
	"io"
	"time"

	"fntp-backend/db"
	analysisstore "fntp-backend/lib/analysis/store"
	responsestore "fntp-backend/lib/assessment/response-store"
	assessmentstore "fntp-backend/lib/assessment/store"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	purgeOlderThan time.Duration
	purgeDryRun    bool
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete completed assessments with their responses and analysis",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if purgeOlderThan <= 0 {
			return errors.New("--older-than must be positive")
		}
		if err := connect(false); err != nil {
			return err
		}
		p := purger{
			assessmentStore: assessmentstore.NewInstance(db.DB),
			responseStore:   responsestore.NewInstance(db.DB),
			analysisStore:   analysisstore.NewInstance(db.DB),
		}
		count, err := p.purge(cmd.OutOrStdout(), time.Now().UTC().Add(-purgeOlderThan), purgeDryRun)
		if err != nil {
			return err
		}
		cmd.Printf("%d assessments purged\n", count)
		return nil
	},
}

func init() {
	purgeCmd.Flags().DurationVar(&purgeOlderThan, "older-than", 365*24*time.Hour, "age of completion")
	purgeCmd.Flags().BoolVar(&purgeDryRun, "dry-run", false, "only list assessments")
}

type purger struct {
	assessmentStore assessmentstore.Provider
	responseStore   responsestore.Provider
	analysisStore   analysisstore.Provider
}

func (p purger) purge(w io.Writer, before time.Time, dryRun bool) (int, error) {
	list, err := p.assessmentStore.ListCompletedBefore(before)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения завершенных опросов")
	}
	count := 0
	for _, rec := range list {
		_, _ = fmt.Fprintf(w, "%s client=%s completed=%s\n", rec.ID, rec.ClientID, rec.CompletedAt.Format(time.RFC3339))
		if dryRun {
			continue
		}
		if err = p.responseStore.DeleteByAssessment(rec.ID); err != nil {
			return count, errors.Wrapf(err, "ошибка удаления ответов опроса %s", rec.ID)
		}
		if err = p.analysisStore.DeleteByAssessment(rec.ID); err != nil {
			return count, errors.Wrapf(err, "ошибка удаления анализа опроса %s", rec.ID)
		}
		if err = p.assessmentStore.Delete(rec.ID); err != nil {
			return count, errors.Wrapf(err, "ошибка удаления опроса %s", rec.ID)
		}
		count++
	}
	return count, nil
}
