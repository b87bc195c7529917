// Copyright 2014 The Gogs Authors. All rights reserved.
// Copyright 2017 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

// CfgProvider is the provider the settings were loaded from
var CfgProvider ConfigProvider

// InitCfgProviderFromFile loads the config file (may be empty for defaults) and all settings from it
func InitCfgProviderFromFile(file string) error {
	cfg, err := NewConfigProviderFromFile(file)
	if err != nil {
		return err
	}
	LoadSettings(cfg)
	return nil
}

// LoadSettings loads all settings in order, the logger goes first so the others can report problems
func LoadSettings(rootCfg ConfigProvider) {
	CfgProvider = rootCfg
	loadLogFrom(rootCfg)
	loadSafeHTMLFrom(rootCfg)
	loadMarkdownFrom(rootCfg)
	loadMarkupFrom(rootCfg)
	loadLinkRulesFrom(rootCfg)
}
