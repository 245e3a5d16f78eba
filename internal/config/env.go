// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// loadEnv fills cfg from the process environment via caarlos0/env. Variable
// names come from the env and envPrefix tags on [StructuredConfig] and its
// nested types; unset variables leave the corresponding fields at their zero
// value, to be filled by a later config layer.
func loadEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("load env config: %w", err)
	}

	return nil
}
