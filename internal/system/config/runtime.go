/*
 * Copyright (c) 2025, CreditDesk Pvt Ltd. (https://www.creditdesk.in).
 *
 * CreditDesk Pvt Ltd. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import "sync"

var (
	runtimeConfig *Config
	runtimeMu     sync.RWMutex
)

// InitializeRuntime installs the loaded configuration as the process-wide
// runtime configuration. Called once at startup before serving.
func InitializeRuntime(cfg *Config) {
	runtimeMu.Lock()
	defer runtimeMu.Unlock()
	runtimeConfig = cfg
}

// GetRuntime returns the active configuration. Before initialization it
// returns a configuration carrying only the risk defaults, which keeps the
// pure scoring paths usable from tests without a deployment file.
func GetRuntime() *Config {
	runtimeMu.RLock()
	defer runtimeMu.RUnlock()
	if runtimeConfig != nil {
		return runtimeConfig
	}
	return &Config{Risk: DefaultRiskConfig()}
}
