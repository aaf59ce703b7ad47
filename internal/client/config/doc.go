// Package config loads runtime configuration for the NoteCompass client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with a .env file merged in when present
//     (NOTECOMPASS_API_URL, NOTECOMPASS_TIMEOUT, NOTECOMPASS_SESSION_DB).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string   base URL of the NoteCompass API
//	-t int      request timeout in seconds (0 disables)
//	-d string   path of the local session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so the timeout can be either a
// string like "5s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.notecompass.example",
//	  "request_timeout": "5s",
//	  "session_db_path": "notecompass.db"
//	}
package config
