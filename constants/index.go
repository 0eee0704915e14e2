package constants

const (
	ERROR_INPUT      = "Invalid input"
	INGEST_FAILED    = "Ingestion run failed"
	REPORT_FAILED    = "Failed to build genre report"
	DB_NOT_AVAILABLE = "Database unavailable"
)

const TOP_GENRES_DEFAULT = 10
