package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	headline = color.New(color.FgCyan, color.Bold)
	good     = color.New(color.FgGreen)
	bad      = color.New(color.FgRed)
	dim      = color.New(color.Faint)
)

func syncCmd() *cobra.Command {
	var courts []string
	var days int
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sweep court portals and reconcile listings",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := post("/ops/sync", map[string]any{
				"court_types": courts,
				"days":        days,
			})
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(data)
			}
			var res struct {
				SweepID        string `json:"sweep_id"`
				PairsTotal     int    `json:"pairs_total"`
				PairsCompleted int    `json:"pairs_completed"`
				NewCases       int    `json:"new_cases"`
				Updates        int    `json:"updates"`
				StatusChanges  []struct {
					CaseNumber string `json:"case_number"`
					OldStatus  string `json:"old_status"`
					NewStatus  string `json:"new_status"`
				} `json:"status_changes"`
				Errors []struct {
					CourtType string `json:"court_type"`
					Date      string `json:"date"`
					Error     string `json:"error"`
				} `json:"errors"`
			}
			if err := json.Unmarshal(data, &res); err != nil {
				return err
			}
			headline.Printf("sweep %s\n", res.SweepID)
			fmt.Printf("  pairs     %d/%d\n", res.PairsCompleted, res.PairsTotal)
			good.Printf("  new       %d\n", res.NewCases)
			fmt.Printf("  updates   %d\n", res.Updates)
			fmt.Printf("  changes   %d\n", len(res.StatusChanges))
			for _, e := range res.Errors {
				bad.Printf("  failed    %s %s: %s\n", e.CourtType, e.Date, e.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&courts, "court", nil, "court types to sweep (repeatable; default all)")
	cmd.Flags().IntVar(&days, "days", 0, "calendar days starting today (0 = server default)")
	return cmd
}

func remindersCmd() *cobra.Command {
	var daysAhead int
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Dispatch hearing reminders for upcoming active listings",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := post("/ops/reminders", map[string]any{"days_ahead": daysAhead})
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(data)
			}
			var res struct {
				ReminderDate  string `json:"reminder_date"`
				TotalHearings int    `json:"total_hearings"`
				RemindersSent int    `json:"reminders_sent"`
			}
			if err := json.Unmarshal(data, &res); err != nil {
				return err
			}
			headline.Printf("reminders for %s\n", res.ReminderDate)
			fmt.Printf("  hearings  %d\n", res.TotalHearings)
			good.Printf("  sent      %d\n", res.RemindersSent)
			return nil
		},
	}
	cmd.Flags().IntVar(&daysAhead, "days-ahead", 0, "days ahead of today (0 = server default)")
	return cmd
}

func exportCmd() *cobra.Command {
	var courtType, date string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render one day's cause list to a document",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := post("/ops/export", map[string]any{
				"court_type": courtType,
				"date":       date,
			})
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(data)
			}
			var res struct {
				Path    string `json:"path"`
				Rows    int    `json:"rows"`
				Stamped int64  `json:"stamped"`
			}
			if err := json.Unmarshal(data, &res); err != nil {
				return err
			}
			good.Printf("wrote %s (%d rows, %d stamped)\n", res.Path, res.Rows, res.Stamped)
			return nil
		},
	}
	cmd.Flags().StringVar(&courtType, "court", "", "court type (required)")
	cmd.Flags().StringVar(&date, "date", "", "listing date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("court")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func queryCmd() *cobra.Command {
	var courtType, from, to, caseNumber, judge, status string
	var limit int
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query stored cause-list entries",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := post("/cause-list/query", map[string]any{
				"court_type":  courtType,
				"date_from":   from,
				"date_to":     to,
				"case_number": caseNumber,
				"judge":       judge,
				"status":      status,
				"limit":       limit,
			})
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(data)
			}
			var res struct {
				Listings []struct {
					Date       string `json:"date"`
					CaseNumber string `json:"case_number"`
					Parties    string `json:"parties"`
					Judge      string `json:"judge"`
					Status     string `json:"status"`
				} `json:"listings"`
				Total int64 `json:"total"`
			}
			if err := json.Unmarshal(data, &res); err != nil {
				return err
			}
			for _, l := range res.Listings {
				fmt.Printf("%s  %-22s %-10s", l.Date, l.CaseNumber, l.Status)
				dim.Printf("  %s", l.Parties)
				fmt.Println()
			}
			dim.Printf("%d of %d\n", len(res.Listings), res.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&courtType, "court", "", "court type filter")
	cmd.Flags().StringVar(&from, "from", "", "date lower bound YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "date upper bound YYYY-MM-DD")
	cmd.Flags().StringVar(&caseNumber, "case", "", "case number substring")
	cmd.Flags().StringVar(&judge, "judge", "", "judge substring")
	cmd.Flags().StringVar(&status, "status", "", "exact status filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "max rows")
	return cmd
}

func trackCmd() *cobra.Command {
	var daysBack int
	cmd := &cobra.Command{
		Use:   "track <case-number>",
		Short: "Show status transitions for cases matching a number pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := post("/cause-list/track-case", map[string]any{
				"case_number": args[0],
				"days_back":   daysBack,
			})
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(data)
			}
			var trs []struct {
				ListingDate string `json:"listing_date"`
				CaseNumber  string `json:"case_number"`
				OldStatus   string `json:"old_status"`
				NewStatus   string `json:"new_status"`
			}
			if err := json.Unmarshal(data, &trs); err != nil {
				return err
			}
			if len(trs) == 0 {
				dim.Println("no status changes in window")
				return nil
			}
			for _, tr := range trs {
				fmt.Printf("%s  %-22s %s -> %s\n", tr.ListingDate, tr.CaseNumber, tr.OldStatus, tr.NewStatus)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&daysBack, "days-back", 0, "history window in days (0 = server default)")
	return cmd
}

func reportCmd() *cobra.Command {
	var courtType, from, to string
	var stats bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build a cause-list report for a court and date window",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := post("/reports/build", map[string]any{
				"court_type":         courtType,
				"date_from":          from,
				"date_to":            to,
				"include_statistics": stats,
			})
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	}
	cmd.Flags().StringVar(&courtType, "court", "all", "court type or all")
	cmd.Flags().StringVar(&from, "from", "", "date lower bound YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&to, "to", "", "date upper bound YYYY-MM-DD (required)")
	cmd.Flags().BoolVar(&stats, "stats", true, "include grouped tallies")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func fetchCaseCmd() *cobra.Command {
	var courtType, caseType, caseNumber string
	var year int
	cmd := &cobra.Command{
		Use:   "fetch-case",
		Short: "Look a case up on its court portal",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := post("/cases/fetch", map[string]any{
				"court_type":  courtType,
				"case_type":   caseType,
				"case_number": caseNumber,
				"year":        year,
			})
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	}
	cmd.Flags().StringVar(&courtType, "court", "", "court type (required)")
	cmd.Flags().StringVar(&caseType, "type", "", "case type, like WP (required)")
	cmd.Flags().StringVar(&caseNumber, "number", "", "case number (required)")
	cmd.Flags().IntVar(&year, "year", 0, "filing year (required)")
	_ = cmd.MarkFlagRequired("court")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func transitionsCmd() *cobra.Command {
	var courtType string
	var limit int
	cmd := &cobra.Command{
		Use:   "transitions",
		Short: "List recently observed status transitions",
		RunE: func(_ *cobra.Command, _ []string) error {
			q := url.Values{}
			if courtType != "" {
				q.Set("court_type", courtType)
			}
			q.Set("limit", strconv.Itoa(limit))
			data, err := get("/ops/transitions?" + q.Encode())
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(data)
			}
			var rows []struct {
				SweepID    string `json:"sweep_id"`
				CourtType  string `json:"court_type"`
				CaseNumber string `json:"case_number"`
				OldStatus  string `json:"old_status"`
				NewStatus  string `json:"new_status"`
			}
			if err := json.Unmarshal(data, &rows); err != nil {
				return err
			}
			for _, tr := range rows {
				fmt.Printf("%-15s %-30s %s -> %s ", tr.CourtType, tr.CaseNumber, tr.OldStatus, tr.NewStatus)
				dim.Printf("(%s)\n", tr.SweepID)
			}
			if len(rows) == 0 {
				dim.Println("no transitions recorded")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&courtType, "court", "", "court type filter")
	cmd.Flags().IntVar(&limit, "limit", 50, "max rows")
	return cmd
}

func recentCmd() *cobra.Command {
	var courtType string
	var limit int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recent case lookups",
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := post("/cases/recent-searches", map[string]any{
				"court_type": courtType,
				"limit":      limit,
			})
			if err != nil {
				return err
			}
			return printJSON(data)
		},
	}
	cmd.Flags().StringVar(&courtType, "court", "", "court type filter")
	cmd.Flags().IntVar(&limit, "limit", 20, "max rows")
	return cmd
}
