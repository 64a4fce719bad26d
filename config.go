package retry

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
)

type (
	// configFile is the top-level JSON structure.
	configFile struct {
		Policies map[string]PolicyConfig `json:"policies"`
	}

	// PolicyConfig holds the decoded configuration for a single retry
	// policy. Export it to embed in your own app config structs for JSON
	// or YAML unmarshaling, then call [BuildPolicy] to obtain a [Policy].
	PolicyConfig struct {
		// Backoff is the backoff strategy name.
		// Required. One of: "constant", "exponential", "linear",
		// "exponential_jitter".
		Backoff *string `json:"backoff,omitempty" yaml:"backoff,omitempty"`
		// BaseDelay is the base delay for backoff calculation.
		// Required. Parsed via time.ParseDuration. Example: "100ms".
		BaseDelay *string `json:"base_delay,omitempty" yaml:"base_delay,omitempty"`
		// MaxDelay caps the backoff delay via [CapDelay].
		// Optional. Parsed via time.ParseDuration. Example: "30s".
		MaxDelay *string `json:"max_delay,omitempty" yaml:"max_delay,omitempty"`
		// GiveUpAfter stops retrying once the computed delay exceeds this
		// threshold, via [GiveUpAfter].
		// Optional. Parsed via time.ParseDuration. Example: "1m".
		GiveUpAfter *string `json:"give_up_after,omitempty" yaml:"give_up_after,omitempty"`
		// MaxAttempts limits the number of attempts via [LimitRetries].
		// Optional. Example: 3.
		MaxAttempts *int `json:"max_attempts,omitempty" yaml:"max_attempts,omitempty"`
	}
)

// LoadConfig reads a JSON configuration file, builds every policy it
// declares, and returns a [Registry] holding them by name. Building is
// eager so configuration errors surface at load time.
//
// Duration values (base_delay, max_delay, give_up_after) are parsed using
// [time.ParseDuration].
//
// Supported backoff strategies: "constant", "exponential", "linear",
// "exponential_jitter".
func LoadConfig(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("retry: read config: %w", err)
	}

	var cfg configFile
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("retry: parse config: %w", err)
	}

	reg := NewRegistry()

	for name, pc := range cfg.Policies {
		p, buildErr := BuildPolicy(&pc)
		if buildErr != nil {
			return nil, fmt.Errorf("retry: policy %q: %w", name, buildErr)
		}

		reg.Register(name, p)
	}

	return reg, nil
}

// BuildPolicy converts a [PolicyConfig] into a [Policy]. Use this when you
// embed [PolicyConfig] in your own config struct and want to build a policy
// without going through [LoadConfig].
//
// The base backoff strategy is merged with a [LimitRetries] gate when
// MaxAttempts is set, then capped with [CapDelay] when MaxDelay is set,
// then cut off with [GiveUpAfter] when that is set.
func BuildPolicy(pc *PolicyConfig) (Policy, error) {
	if pc.Backoff == nil {
		return nil, ErrMissingBackoff
	}

	if pc.BaseDelay == nil {
		return nil, ErrMissingBaseDelay
	}

	base, err := time.ParseDuration(*pc.BaseDelay)
	if err != nil {
		return nil, fmt.Errorf("parse base_delay: %w", err)
	}

	var p Policy

	switch *pc.Backoff {
	case "constant":
		p = ConstantDelay(base)
	case "exponential":
		p = ExponentialBackoff(base)
	case "linear":
		p = LinearBackoff(base)
	case "exponential_jitter":
		p = ExponentialJitter(base)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackoff, *pc.Backoff)
	}

	var combinators []Combinator

	if pc.MaxAttempts != nil {
		if *pc.MaxAttempts <= 0 {
			return nil, ErrInvalidMaxAttempts
		}

		combinators = append(combinators, MergeWith(LimitRetries(*pc.MaxAttempts)))
	}

	if pc.MaxDelay != nil {
		maxDelay, parseErr := time.ParseDuration(*pc.MaxDelay)
		if parseErr != nil {
			return nil, fmt.Errorf("parse max_delay: %w", parseErr)
		}

		combinators = append(combinators, CapDelay(maxDelay))
	}

	if pc.GiveUpAfter != nil {
		threshold, parseErr := time.ParseDuration(*pc.GiveUpAfter)
		if parseErr != nil {
			return nil, fmt.Errorf("parse give_up_after: %w", parseErr)
		}

		combinators = append(combinators, GiveUpAfter(threshold))
	}

	return Pipe(p, combinators...), nil
}
