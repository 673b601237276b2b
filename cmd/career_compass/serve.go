package main

import (
	"os"
	"strconv"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath  string
	serveCatalogPath string
	servePort        int
	serveTopN        int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for career analysis and resume skill extraction.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveCatalogPath, "catalog", "", "Path to CSV catalog (default: embedded catalog)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080, or PORT env)")
	serveCmd.Flags().IntVar(&serveTopN, "top", 0, "Number of matches returned per analysis (default 3)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	catalogPath, port, topN := serveCatalogPath, servePort, serveTopN

	if serveConfigPath != "" {
		cfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if catalogPath == "" {
			catalogPath = cfg.Catalog
		}
		if port == 0 {
			port = cfg.Port
		}
		if topN == 0 {
			topN = cfg.TopN
		}
	}

	if catalogPath == "" {
		catalogPath = os.Getenv("CAREER_CATALOG")
	}
	if port == 0 {
		if env := os.Getenv("PORT"); env != "" {
			if p, err := strconv.Atoi(env); err == nil {
				port = p
			}
		}
	}
	if port == 0 {
		port = 8080
	}

	srv, err := server.New(server.Config{
		Port:        port,
		CatalogPath: catalogPath,
		TopN:        topN,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
