package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Clippings
		Outline
		Database
		Sync
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Clippings struct {
		FilePath string // Source "My Clippings.txt" location
	}
	Outline struct {
		IncludeDate     bool   // Emit :DATE: property drawers
		IncludePDFLinks bool   // Emit pdfview links for page-bearing entries
		PDFFolder       string // Base path used when building pdfview links
		OutputDir       string // Directory for the generated org file
		FileName        string // Name of the generated org file
	}
	Database struct {
		Path string
	}
	Sync struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("clippings_file_path", DefaultClippingsPath)
	v.SetDefault("outline_include_date", true)
	v.SetDefault("outline_include_pdf_links", false)
	v.SetDefault("outline_pdf_folder", "")
	v.SetDefault("outline_output_dir", "")
	v.SetDefault("outline_file_name", "clippings.org")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("sync_enabled", false)
	v.SetDefault("sync_schedule", "0 * * * *") // Hourly at :00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Clippings: Clippings{
			FilePath: v.GetString("CLIPPINGS_FILE_PATH"),
		},
		Outline: Outline{
			IncludeDate:     v.GetBool("OUTLINE_INCLUDE_DATE"),
			IncludePDFLinks: v.GetBool("OUTLINE_INCLUDE_PDF_LINKS"),
			PDFFolder:       v.GetString("OUTLINE_PDF_FOLDER"),
			OutputDir:       v.GetString("OUTLINE_OUTPUT_DIR"),
			FileName:        v.GetString("OUTLINE_FILE_NAME"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Sync: Sync{
			Enabled:  v.GetBool("SYNC_ENABLED"),
			Schedule: v.GetString("SYNC_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
