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

type AddrConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DbName   string `yaml:"dbname"`
}

type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	URI     string `yaml:"uri"`
	DbName  string `yaml:"dbname"`
}

// RiskConfig carries the risk-analysis thresholds. The defaults are the
// product-mandated constants; the config file may override them but the
// scoring algorithm itself is fixed.
type RiskConfig struct {
	LowScoreCutoff      int     `yaml:"low_score_cutoff"`
	HighOverdueCutoff   float64 `yaml:"high_overdue_cutoff"`
	MaxRecentEnquiries  int     `yaml:"max_recent_enquiries"`
	EnquiryWindowDays   int     `yaml:"enquiry_window_days"`
	LowScorePoints      int     `yaml:"low_score_points"`
	HighOverduePoints   int     `yaml:"high_overdue_points"`
	EnquiryPoints       int     `yaml:"enquiry_points"`
	WriteOffPoints      int     `yaml:"write_off_points"`
	HighRiskThreshold   int     `yaml:"high_risk_threshold"`
	HighRiskReasonCount int     `yaml:"high_risk_reason_count"`
}

type Config struct {
	Addr           AddrConfig     `yaml:"addr"`
	Log            LogConfig      `yaml:"log"`
	DatabaseConfig DatabaseConfig `yaml:"database"`
	Archive        ArchiveConfig  `yaml:"archive"`
	Risk           RiskConfig     `yaml:"risk"`
}

// DefaultRiskConfig returns the fixed product thresholds used when the
// deployment file does not override them.
func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		LowScoreCutoff:      600,
		HighOverdueCutoff:   50000,
		MaxRecentEnquiries:  5,
		EnquiryWindowDays:   90,
		LowScorePoints:      40,
		HighOverduePoints:   30,
		EnquiryPoints:       15,
		WriteOffPoints:      25,
		HighRiskThreshold:   40,
		HighRiskReasonCount: 2,
	}
}
