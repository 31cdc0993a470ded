// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the service. Missing secrets are not checked here: the gateway must
// start without them and answer each request with the matching error.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	u, err := url.Parse(cfg.Adpoint.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base url %q must include scheme and host", ErrInvalidAdpointConfigs, cfg.Adpoint.BaseURL)
	}
	if cfg.Adpoint.ContactsConcurrency < 1 {
		return fmt.Errorf("%w: contacts concurrency must be at least 1", ErrInvalidAdpointConfigs)
	}
	if cfg.Adpoint.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdpointConfigs)
	}

	return nil
}
