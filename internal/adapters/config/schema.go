package config

// File represents the structure of the lunchcal.yaml configuration file.
// Secret-bearing fields may reference environment variables as ${VAR}; they
// are expanded at load time.
type File struct {
	Server    ServerDTO    `yaml:"server"`
	Storage   StorageDTO   `yaml:"storage"`
	Generator GeneratorDTO `yaml:"generator"`
	Scraper   ScraperDTO   `yaml:"scraper"`
	Calendar  CalendarDTO  `yaml:"calendar"`
	SMTP      SMTPDTO      `yaml:"smtp"`
}

// ServerDTO configures the HTTP surface.
type ServerDTO struct {
	Listen string `yaml:"listen"`
}

// StorageDTO selects and configures the object store backend.
type StorageDTO struct {
	Backend string `yaml:"backend"`
	// Root is the directory of the filesystem backend.
	Root string `yaml:"root"`
	// BaseURL is the public URL prefix the filesystem backend reports.
	BaseURL string `yaml:"base_url"`
	// Bucket and Region configure the S3 backend.
	Bucket string `yaml:"bucket"`
	Region string `yaml:"region"`
}

// GeneratorDTO configures the image generation client.
type GeneratorDTO struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// ScraperDTO configures the menu scraping client.
type ScraperDTO struct {
	APIKey  string `yaml:"api_key"`
	MenuURL string `yaml:"menu_url"`
}

// CalendarDTO configures composition.
type CalendarDTO struct {
	FontPath string `yaml:"font_path"`
}

// SMTPDTO configures outbound menu email.
type SMTPDTO struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	From     string `yaml:"from"`
	Password string `yaml:"password"`
}
