/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3410)
  - DatabaseURL: Connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SurveyID: Survey identifier (default: parent-survey)
  - AdminToken: Shared secret for the admin API (required)
  - IPHashSalt: Secret for client address hashing (required)
  - TrustedIPs: Addresses that bypass one-per-IP dedup
  - WebhookURL: Optional forwarding target for accepted submissions

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	SURVEY_ID     → -survey
	TRUSTED_IPS   → -trusted-ips
	WEBHOOK_URL   → -webhook
	ADMIN_TOKEN   → -admin-token
	IP_HASH_SALT  → -ip-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - ADMIN_TOKEN must be provided
  - IP_HASH_SALT must be provided
*/
package cliparse
