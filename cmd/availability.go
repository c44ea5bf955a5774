package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/booking"

	"github.com/spf13/cobra"
)

type AvailabilityTarget struct {
	Key   string         `json:"key"`
	Type  string         `json:"type"`
	ID    int            `json:"id"`
	Name  string         `json:"name"`
	Slots []api.TimeSlot `json:"slots"`
}

type AvailabilityOutput struct {
	ComplexID int                  `json:"complex_id"`
	Date      string               `json:"date"`
	Targets   []AvailabilityTarget `json:"targets"`
}

func availabilityCmd() *cobra.Command {
	var complexID int
	var date string

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Show free time slots for every pitch and group of a complex",
		RunE: func(cmd *cobra.Command, args []string) error {
			if complexID == 0 {
				return fmt.Errorf("--complex is required")
			}
			if date == "" {
				date = "today"
			}
			parsed, err := parseDateInput(date)
			if err != nil {
				return err
			}
			targetDate := parsed.Format("2006-01-02")

			ctx := context.Background()
			attachToken()

			pitches, err := client.GetPitchesByComplex(ctx, complexID)
			if err != nil {
				return err
			}
			groups, err := client.GetPitchGroupsByComplex(ctx, complexID)
			if err != nil {
				return err
			}

			slots := booking.ResolveAvailability(ctx, client, complexID, targetDate, pitches, groups)

			targets := make([]AvailabilityTarget, 0, len(slots))
			for _, pitch := range pitches {
				key := booking.SlotKey(booking.TargetPitch, pitch.ID)
				targets = append(targets, AvailabilityTarget{
					Key:   key,
					Type:  booking.TargetPitch,
					ID:    pitch.ID,
					Name:  pitch.Name,
					Slots: slots[key],
				})
			}
			for _, group := range groups {
				key := booking.SlotKey(booking.TargetGroup, group.ID)
				targets = append(targets, AvailabilityTarget{
					Key:   key,
					Type:  booking.TargetGroup,
					ID:    group.ID,
					Name:  group.Name,
					Slots: slots[key],
				})
			}
			sort.Slice(targets, func(i, j int) bool {
				if targets[i].Type == targets[j].Type {
					return targets[i].ID < targets[j].ID
				}
				return targets[i].Type < targets[j].Type
			})

			output := AvailabilityOutput{
				ComplexID: complexID,
				Date:      targetDate,
				Targets:   targets,
			}

			if outputJSON {
				return writeJSON(output)
			}
			return renderAvailability(output)
		},
	}

	cmd.Flags().IntVar(&complexID, "complex", 0, "Complex ID")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today, tomorrow)")
	return cmd
}

func renderAvailability(output AvailabilityOutput) error {
	fmt.Printf("Complex %d\nDate: %s\n", output.ComplexID, output.Date)

	if len(output.Targets) == 0 {
		fmt.Println("No pitches or groups.")
		return nil
	}

	if outputCompact {
		parts := make([]string, 0, len(output.Targets))
		for _, target := range output.Targets {
			if len(target.Slots) == 0 {
				parts = append(parts, fmt.Sprintf("%s: no slots", target.Name))
				continue
			}
			times := make([]string, 0, len(target.Slots))
			for _, slot := range target.Slots {
				times = append(times, slotLabel(slot.StartTime))
			}
			parts = append(parts, fmt.Sprintf("%s: %s", target.Name, strings.Join(times, " ")))
		}
		fmt.Println(strings.Join(parts, " | "))
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
	fmt.Fprintln(writer, "TARGET\tTYPE\tSLOT\tTIME\tFEE")
	for _, target := range output.Targets {
		if len(target.Slots) == 0 {
			fmt.Fprintf(writer, "%s\t%s\t-\tno free slots\t-\n", target.Name, target.Type)
			continue
		}
		for _, slot := range target.Slots {
			fmt.Fprintf(writer, "%s\t%s\t%d\t%s\t%s\n", target.Name, target.Type, slot.ID, slotRange(slot), formatVND(slot.Price))
		}
	}
	return writer.Flush()
}
