package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/storage"

	"github.com/spf13/cobra"
)

var (
	outputJSON    bool
	outputCompact bool
	cfg           Config
	client        = api.NewClient()
)

type Config struct {
	APIURL          string `json:"api_url"`
	DefaultProvince string `json:"default_province"`
}

var rootCmd = &cobra.Command{
	Use:   "datsan",
	Short: "Datsan CLI for finding and booking football pitches",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputJSON && outputCompact {
			return fmt.Errorf("choose either --json or --compact")
		}
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(complexesCmd())
	rootCmd.AddCommand(availabilityCmd())
	rootCmd.AddCommand(bookCmd())
	rootCmd.AddCommand(checkoutCmd())
	rootCmd.AddCommand(paymentsCmd())
	rootCmd.AddCommand(bookingsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().BoolVar(&outputCompact, "compact", false, "Output compact text")
}

func initConfig() {
	loaded, err := loadConfig()
	if err == nil {
		cfg = loaded
	}
	if cfg.APIURL != "" {
		client.BaseURL = cfg.APIURL
	}
	if url := os.Getenv("DATSAN_API_URL"); url != "" {
		client.BaseURL = url
	}
}

func loadConfig() (Config, error) {
	path, err := storage.ConfigPath()
	if err != nil {
		return Config{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("config path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var conf Config
	if err := json.NewDecoder(file).Decode(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}
