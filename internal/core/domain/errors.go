package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidWeekID is returned when a week identifier does not match "YYYY-Wnn".
	ErrInvalidWeekID = zerr.New("invalid week identifier, expected format YYYY-Wnn")

	// ErrUnknownWeekday is returned when a menu uses a key outside monday-friday.
	ErrUnknownWeekday = zerr.New("unknown weekday key")

	// ErrEmptyMenu is returned when composition is requested for a menu with no items.
	ErrEmptyMenu = zerr.New("menu has no items")

	// ErrDayNotFound is returned when the requested day has no menu entry.
	ErrDayNotFound = zerr.New("no menu information found for day")

	// ErrScrapeFailed is returned when the scraping collaborator produced no menu data.
	ErrScrapeFailed = zerr.New("failed to scrape menu")

	// ErrGenerationFailed is returned when the image generator produced no image.
	ErrGenerationFailed = zerr.New("image generation produced no image")

	// ErrUploadFailed is returned when an object-store upload fails.
	ErrUploadFailed = zerr.New("failed to upload artifact")

	// ErrStoreReadFailed is returned when cache metadata cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cache metadata")

	// ErrStoreUnmarshalFailed is returned when cache metadata cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache metadata")

	// ErrStoreMarshalFailed is returned when cache metadata cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache metadata")

	// ErrStoreWriteFailed is returned when cache metadata cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write cache metadata")

	// ErrStoreCreateFailed is returned when the metadata store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create metadata store directory")

	// ErrMenuNotFound is returned when no menu document exists for a week.
	ErrMenuNotFound = zerr.New("no menu stored for week")

	// ErrConfigNotFound is returned when no config file exists in the
	// working directory or any parent.
	ErrConfigNotFound = zerr.New("no lunchcal.yaml found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownStorageBackend is returned when the configured storage backend is not fs or s3.
	ErrUnknownStorageBackend = zerr.New("unknown storage backend, expected 'fs' or 's3'")

	// ErrPDFRenderFailed is returned when the PDF exporter cannot produce a document.
	ErrPDFRenderFailed = zerr.New("failed to render PDF")

	// ErrEmailSendFailed is returned when the mailer cannot deliver the menu email.
	ErrEmailSendFailed = zerr.New("failed to send menu email")

	// ErrMissingRecipient is returned when an email request lacks a recipient.
	ErrMissingRecipient = zerr.New("recipient and calendar_url are required")

	// ErrMissingMenuData is returned when a calendar request lacks menu data or week id.
	ErrMissingMenuData = zerr.New("menu_data and week_id are required")

	// ErrMissingURL is returned when a scrape request lacks a URL.
	ErrMissingURL = zerr.New("URL is required")
)

// DirPerm is the permission used when creating store directories.
const DirPerm = 0o755

// FilePerm is the permission used when writing store files.
const FilePerm = 0o644
