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

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

// LoadConfig reads the deployment yaml, expands ${ENV_VAR} references and
// unmarshals it. Risk thresholds missing from the file fall back to the
// product defaults.
func LoadConfig(serviceHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(serviceHome, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	applyRiskDefaults(&cfg.Risk)
	return &cfg, nil
}

func applyRiskDefaults(rc *RiskConfig) {
	defaults := DefaultRiskConfig()
	if rc.LowScoreCutoff == 0 {
		rc.LowScoreCutoff = defaults.LowScoreCutoff
	}
	if rc.HighOverdueCutoff == 0 {
		rc.HighOverdueCutoff = defaults.HighOverdueCutoff
	}
	if rc.MaxRecentEnquiries == 0 {
		rc.MaxRecentEnquiries = defaults.MaxRecentEnquiries
	}
	if rc.EnquiryWindowDays == 0 {
		rc.EnquiryWindowDays = defaults.EnquiryWindowDays
	}
	if rc.LowScorePoints == 0 {
		rc.LowScorePoints = defaults.LowScorePoints
	}
	if rc.HighOverduePoints == 0 {
		rc.HighOverduePoints = defaults.HighOverduePoints
	}
	if rc.EnquiryPoints == 0 {
		rc.EnquiryPoints = defaults.EnquiryPoints
	}
	if rc.WriteOffPoints == 0 {
		rc.WriteOffPoints = defaults.WriteOffPoints
	}
	if rc.HighRiskThreshold == 0 {
		rc.HighRiskThreshold = defaults.HighRiskThreshold
	}
	if rc.HighRiskReasonCount == 0 {
		rc.HighRiskReasonCount = defaults.HighRiskReasonCount
	}
}
