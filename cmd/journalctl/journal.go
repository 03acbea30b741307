package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bhatiakavisha/AI-Health-Companion/client"
	"github.com/bhatiakavisha/AI-Health-Companion/internal/model"
)

func (c *cli) newEntriesCmd() *cobra.Command {
	entriesCmd := &cobra.Command{Use: "entries", Short: "Symptom and note entries"}

	var in client.NewEntry
	var entryType, severity string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Log a symptom or note",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Type = model.EntryType(entryType)
			in.Severity = model.Severity(severity)
			return c.call(cmd, "add_entry", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.AddEntry(ctx, in)
			})
		},
	}
	addCmd.Flags().StringVarP(&entryType, "type", "t", string(model.EntrySymptom), "Entry type (symptom|note)")
	addCmd.Flags().StringVar(&in.Title, "title", "", "Title (required)")
	addCmd.Flags().StringVar(&in.Description, "description", "", "Free-text description")
	addCmd.Flags().StringVarP(&severity, "severity", "s", "", "mild|moderate|severe (defaults to mild)")
	addCmd.Flags().StringSliceVar(&in.Tags, "tags", nil, "Comma-separated tags")
	_ = addCmd.MarkFlagRequired("title")

	var days int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "list_entries", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.ListEntries(ctx, days)
			})
		},
	}
	listCmd.Flags().IntVar(&days, "days", 0, "Look-back window in days (all when 0)")

	entriesCmd.AddCommand(addCmd, listCmd)
	return entriesCmd
}

func (c *cli) newVitalsCmd() *cobra.Command {
	vitalsCmd := &cobra.Command{Use: "vitals", Short: "Vital sign measurements"}

	var in client.NewVital
	var vitalType string
	var systolic, diastolic float64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a measurement",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Type = model.VitalType(vitalType)
			if cmd.Flags().Changed("systolic") {
				in.Systolic = &systolic
			}
			if cmd.Flags().Changed("diastolic") {
				in.Diastolic = &diastolic
			}
			return c.call(cmd, "add_vital", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.AddVital(ctx, in)
			})
		},
	}
	addCmd.Flags().StringVarP(&vitalType, "type", "t", "", "blood_pressure|heart_rate|temperature|weight|blood_sugar (required)")
	addCmd.Flags().Float64Var(&in.Value, "value", 0, "Measured value")
	addCmd.Flags().StringVar(&in.Unit, "unit", "", "Unit (defaults per type)")
	addCmd.Flags().StringVar(&in.Notes, "notes", "", "Notes")
	addCmd.Flags().Float64Var(&systolic, "systolic", 0, "Systolic pressure (blood_pressure only)")
	addCmd.Flags().Float64Var(&diastolic, "diastolic", 0, "Diastolic pressure (blood_pressure only)")
	_ = addCmd.MarkFlagRequired("type")

	var days int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent measurements, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "list_vitals", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.ListVitals(ctx, days)
			})
		},
	}
	listCmd.Flags().IntVar(&days, "days", 0, "Look-back window in days (all when 0)")

	vitalsCmd.AddCommand(addCmd, listCmd)
	return vitalsCmd
}

func (c *cli) newMedsCmd() *cobra.Command {
	medsCmd := &cobra.Command{Use: "meds", Short: "Medication tracking"}

	var in client.NewMedication
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Track a medication",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "add_medication", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.AddMedication(ctx, in)
			})
		},
	}
	addCmd.Flags().StringVar(&in.Name, "name", "", "Medication name (required)")
	addCmd.Flags().StringVar(&in.Dosage, "dosage", "", "Dosage, e.g. 500mg (required)")
	addCmd.Flags().StringVar(&in.Frequency, "frequency", "daily", "daily|twice_daily|as_needed")
	addCmd.Flags().IntSliceVar(&in.Times, "times", nil, "Reminder hours of day, e.g. 8,20")
	addCmd.Flags().StringVar(&in.Notes, "notes", "", "Notes")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("dosage")

	var active bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List medications",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "list_medications", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.ListMedications(ctx, active)
			})
		},
	}
	listCmd.Flags().BoolVar(&active, "active", false, "Only active medications")

	medsCmd.AddCommand(addCmd, listCmd)
	return medsCmd
}

func (c *cli) newGoalsCmd() *cobra.Command {
	goalsCmd := &cobra.Command{Use: "goals", Short: "Health goals"}

	var in client.NewGoal
	var category string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Category = model.GoalCategory(category)
			return c.call(cmd, "add_goal", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.AddGoal(ctx, in)
			})
		},
	}
	addCmd.Flags().StringVar(&in.Title, "title", "", "Title (required)")
	addCmd.Flags().StringVar(&in.Description, "description", "", "Description")
	addCmd.Flags().StringVar(&category, "category", string(model.GoalFitness), "fitness|nutrition|mental_health|chronic_disease")
	addCmd.Flags().Float64Var(&in.TargetValue, "target", 0, "Target value (required)")
	addCmd.Flags().StringVar(&in.Unit, "unit", "", "Unit of the target (required)")
	addCmd.Flags().StringVar(&in.TargetDate, "target-date", "", "Target date YYYY-MM-DD (required)")
	for _, f := range []string{"title", "target", "unit", "target-date"} {
		_ = addCmd.MarkFlagRequired(f)
	}

	var active bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List goals with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "list_goals", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.ListGoals(ctx, active)
			})
		},
	}
	listCmd.Flags().BoolVar(&active, "active", false, "Only goals still in progress")

	getCmd := &cobra.Command{
		Use:   "get GOAL_ID",
		Short: "Get a goal by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "get_goal", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.GetGoal(ctx, args[0])
			})
		},
	}

	progressCmd := &cobra.Command{
		Use:   "progress GOAL_ID VALUE",
		Short: "Set a goal's current value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("VALUE must be a number: %w", err)
			}
			return c.call(cmd, "update_goal_progress", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.UpdateGoalProgress(ctx, args[0], value)
			})
		},
	}

	planCmd := &cobra.Command{
		Use:   "plan GOAL_ID",
		Short: "Generate an action plan for a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "plan_goal", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				plan, err := cl.PlanGoal(ctx, args[0])
				return map[string]string{"goalId": args[0], "plan": plan}, err
			})
		},
	}

	goalsCmd.AddCommand(addCmd, listCmd, getCmd, progressCmd, planCmd)
	return goalsCmd
}

func (c *cli) newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show dashboard counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "summary", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.Summary(ctx)
			})
		},
	}
}

func (c *cli) newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.call(cmd, "health", func(ctx context.Context, cl *client.Client) (interface{}, error) {
				return cl.Health(ctx)
			})
		},
	}
}
