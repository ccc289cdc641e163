package configs

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Viper keys. The command layer binds flags and NSQTOP_* environment
// variables onto these before calling Load.
const (
	KeyLookupdAddresses = "lookupd_http_address"
	KeyLookupTimeout    = "lookup_timeout"
	KeyInterval         = "interval"
	KeyDepthWarn        = "depth_warn_threshold"
	KeyDepthCrit        = "depth_crit_threshold"
	KeyHistoryLength    = "history_length"
	KeyLogLevel         = "log_level"
	KeyLogFile          = "log_file"
	KeyDebugAddr        = "debug_addr"
)

// Load reads configuration from the prepared viper instance and validates
// it. The lookupd address list is required; a missing or empty list is a
// startup error.
var Load = func(v *viper.Viper) (*Config, error) {
	addresses := NormalizeAddresses(v.GetString(KeyLookupdAddresses))
	if len(addresses) == 0 {
		return nil, fmt.Errorf("at least one lookupd address is required " +
			"(--lookupd-http-address or NSQTOP_LOOKUPD_ADDRESSES)")
	}

	cfg := &Config{
		Lookup: LookupConfig{
			Addresses:      addresses,
			TimeoutSeconds: v.GetInt(KeyLookupTimeout),
		},
		Poll: PollConfig{
			IntervalSeconds: v.GetInt(KeyInterval),
		},
		Display: DisplayConfig{
			DepthWarnThreshold: v.GetInt64(KeyDepthWarn),
			DepthCritThreshold: v.GetInt64(KeyDepthCrit),
			HistoryLength:      v.GetInt(KeyHistoryLength),
		},
		Log: LogConfig{
			Level: v.GetString(KeyLogLevel),
			File:  v.GetString(KeyLogFile),
		},
		Debug: DebugConfig{
			Addr: v.GetString(KeyDebugAddr),
		},
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return cfg, nil
}

// NormalizeAddresses splits a comma-separated lookupd address list, trims
// whitespace, drops empty entries and defaults the scheme to plain HTTP
// when none is given.
func NormalizeAddresses(raw string) []string {
	var addresses []string
	for _, address := range strings.Split(raw, ",") {
		address = strings.TrimSpace(address)
		if address == "" {
			continue
		}
		if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
			address = "http://" + address
		}
		addresses = append(addresses, address)
	}
	return addresses
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validator.FieldError) string {
	field := e.Field()

	// Build field path (e.g., "poll.intervalseconds")
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min":
		return fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		return fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "gtefield":
		return fmt.Sprintf("%s (must be >= %s)", field, strings.ToLower(e.Param()))
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}
