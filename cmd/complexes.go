package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/storage"

	"github.com/spf13/cobra"
)

func complexesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complexes",
		Short: "Browse pitch complexes",
	}

	cmd.AddCommand(complexesListCmd())
	cmd.AddCommand(complexesSearchCmd())
	cmd.AddCommand(complexesNearbyCmd())
	cmd.AddCommand(complexesShowCmd())
	cmd.AddCommand(complexesLastCmd())
	return cmd
}

func complexesListCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all complexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			complexes, err := client.GetAllComplexes(context.Background())
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(complexes)
			}
			return renderComplexPage(complexes, page)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Result page (9 per page)")
	return cmd
}

func complexesSearchCmd() *cobra.Command {
	var provinceID int
	var districtID int
	var pitchType string
	var page int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search complexes by region and pitch type",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The district filter depends on a chosen province; the
			// backend does not enforce this, the client does.
			if districtID != 0 && provinceID == 0 {
				return fmt.Errorf("--district requires --province")
			}
			if pitchType != "" && pitchType != "FIVE" && pitchType != "SEVEN" && pitchType != "ELEVEN" {
				return fmt.Errorf("invalid pitch type %q (expected FIVE, SEVEN or ELEVEN)", pitchType)
			}

			ctx := context.Background()
			filter := api.ComplexFilter{
				ProvinceID: provinceID,
				DistrictID: districtID,
				PitchType:  pitchType,
			}
			complexes, err := client.SearchComplexes(ctx, filter)
			if err != nil {
				return err
			}

			var districts []api.District
			if provinceID != 0 {
				districts, err = client.GetDistrictsByProvince(ctx, provinceID)
				if err != nil {
					districts = nil
				}
			}

			if page < 1 {
				page = 1
			}
			// The snapshot remembers the page actually rendered, so
			// 'complexes last' resumes at the same place.
			state := storage.BrowseState{
				Complexes: complexes,
				Filters: storage.BrowseFilters{
					ProvinceID: provinceID,
					DistrictID: districtID,
					PitchType:  pitchType,
				},
				CurrentPage: page,
				Districts:   districts,
			}
			if err := storage.SaveBrowseState(&state); err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(complexes)
			}
			if len(complexes) == 0 {
				fmt.Println("No complexes matched your search.")
				return nil
			}
			return renderComplexPage(complexes, page)
		},
	}

	cmd.Flags().IntVar(&provinceID, "province", 0, "Province ID")
	cmd.Flags().IntVar(&districtID, "district", 0, "District ID (requires --province)")
	cmd.Flags().StringVar(&pitchType, "pitch-type", "", "Pitch type (FIVE, SEVEN, ELEVEN)")
	cmd.Flags().IntVar(&page, "page", 1, "Result page (9 per page)")
	return cmd
}

func complexesNearbyCmd() *cobra.Command {
	var near string
	var provinceName string
	var radius float64
	var pick int
	var page int

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "Find complexes within a radius of an address",
		RunE: func(cmd *cobra.Command, args []string) error {
			if near == "" {
				return fmt.Errorf("--near is required (address or lat,lon)")
			}
			if radius <= 0 {
				return fmt.Errorf("--radius must be greater than 0")
			}
			if provinceName == "" {
				provinceName = cfg.DefaultProvince
			}

			ctx := context.Background()
			lat, lon, ok := parseCoordinate(near)
			if !ok {
				suggestions, err := client.SuggestAddresses(ctx, near, provinceName)
				if err != nil {
					return err
				}
				if len(suggestions) == 0 {
					return fmt.Errorf("no address matches for %q", near)
				}
				if pick < 1 || pick > len(suggestions) {
					if pick != 0 {
						return fmt.Errorf("--pick must be between 1 and %d", len(suggestions))
					}
					pick = 1
				}
				chosen := suggestions[pick-1]
				lat, lon = chosen.Lat, chosen.Lon
				fmt.Printf("Using address: %s\n", chosen.DisplayName)
			}

			complexes, err := client.GetNearbyComplexes(ctx, lat, lon, radius)
			if err != nil {
				return err
			}

			if page < 1 {
				page = 1
			}
			state := storage.BrowseState{
				Complexes:   complexes,
				CurrentPage: page,
			}
			if err := storage.SaveBrowseState(&state); err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(complexes)
			}
			if len(complexes) == 0 {
				fmt.Println("No complexes within the requested radius.")
				return nil
			}
			return renderComplexPage(complexes, page)
		},
	}

	cmd.Flags().StringVar(&near, "near", "", "Address or lat,lon")
	cmd.Flags().StringVar(&provinceName, "province", "", "Province name to qualify the address search")
	cmd.Flags().Float64Var(&radius, "radius", 5, "Search radius in km")
	cmd.Flags().IntVar(&pick, "pick", 0, "Pick the Nth address suggestion")
	cmd.Flags().IntVar(&page, "page", 1, "Result page (9 per page)")
	return cmd
}

func complexesShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a complex with its pitches and groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid complex id %q", args[0])
			}

			ctx := context.Background()
			complex, err := client.GetComplexByID(ctx, id)
			if err != nil {
				return err
			}
			pitches, err := client.GetPitchesByComplex(ctx, id)
			if err != nil {
				return err
			}
			groups, err := client.GetPitchGroupsByComplex(ctx, id)
			if err != nil {
				return err
			}
			images, err := client.GetImagesByComplex(ctx, id)
			if err != nil {
				images = nil
			}

			if outputJSON {
				return writeJSON(map[string]any{
					"complex": complex,
					"pitches": pitches,
					"groups":  groups,
					"images":  images,
				})
			}

			fmt.Printf("%s (#%d)\n", complex.Name, complex.ID)
			fmt.Printf("Address: %s, %s, %s\n", complex.Address, complex.DistrictName, complex.ProvinceName)
			fmt.Printf("Phone: %s\n", complex.Phone)
			fmt.Printf("Status: %s\n", complex.Status)
			if complex.Status != api.ComplexActive {
				fmt.Println("This complex is not accepting bookings.")
			}
			if len(images) > 0 {
				fmt.Printf("Images: %d\n", len(images))
			}

			if len(pitches) == 0 {
				fmt.Println("\nNo pitches.")
			} else {
				fmt.Println("\nPitches:")
				writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
				fmt.Fprintln(writer, "ID\tNAME\tTYPE\tPRICE\tSTATUS")
				for _, pitch := range pitches {
					fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n", pitch.ID, pitch.Name, pitchTypeLabel(pitch.Type), formatVND(pitch.PricePerHour), pitch.Status)
				}
				if err := writer.Flush(); err != nil {
					return err
				}
			}

			if len(groups) == 0 {
				fmt.Println("\nNo pitch groups.")
			} else {
				fmt.Println("\nPitch groups:")
				writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
				fmt.Fprintln(writer, "ID\tNAME\tPITCHES\tPRICE\tSTATUS")
				for _, group := range groups {
					fmt.Fprintf(writer, "%d\t%s\t%d\t%s\t%s\n", group.ID, group.Name, len(group.PitchIDs), formatVND(group.Price), group.Status)
				}
				if err := writer.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}

func complexesLastCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "last",
		Short: "Re-render the last search without re-querying",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := storage.LoadBrowseState()
			if err != nil {
				return err
			}
			if state == nil {
				fmt.Println("No saved browse state. Run 'datsan complexes search' first.")
				return nil
			}

			if page > 0 && page != state.CurrentPage {
				state.CurrentPage = page
				if err := storage.SaveBrowseState(state); err != nil {
					return err
				}
			}

			if outputJSON {
				return writeJSON(state)
			}
			return renderComplexPage(state.Complexes, state.CurrentPage)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Switch to a different page and remember it")
	return cmd
}

func renderComplexPage(complexes []api.Complex, page int) error {
	if len(complexes) == 0 {
		fmt.Println("No complexes found.")
		return nil
	}
	if page < 1 {
		page = 1
	}

	visible := storage.Page(complexes, page)
	if len(visible) == 0 {
		return fmt.Errorf("page %d is out of range (1-%d)", page, storage.TotalPages(len(complexes)))
	}

	writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
	hasDistance := false
	for _, complex := range visible {
		if complex.Distance > 0 {
			hasDistance = true
			break
		}
	}
	if !outputCompact {
		if hasDistance {
			fmt.Fprintln(writer, "ID\tNAME\tDISTRICT\tPROVINCE\tSTATUS\tDISTANCE")
		} else {
			fmt.Fprintln(writer, "ID\tNAME\tDISTRICT\tPROVINCE\tSTATUS")
		}
	}
	for _, complex := range visible {
		if hasDistance {
			fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\t%.2f km\n", complex.ID, complex.Name, complex.DistrictName, complex.ProvinceName, complex.Status, complex.Distance)
		} else {
			fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n", complex.ID, complex.Name, complex.DistrictName, complex.ProvinceName, complex.Status)
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Printf("Page %d of %d (%d complexes)\n", page, storage.TotalPages(len(complexes)), len(complexes))
	return nil
}
