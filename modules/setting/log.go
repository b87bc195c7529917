// Copyright 2019 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"code.gitea.io/safehtml/modules/log"
)

// Log settings
var Log = struct {
	Level log.Level
	Flags log.Flags
}{
	Level: log.INFO,
	Flags: log.LstdFlags,
}

func loadLogFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("log")
	Log.Level = log.LevelFromString(sec.Key("LEVEL").MustString(log.INFO.String()))
	if sec.HasKey("FLAGS") {
		Log.Flags = log.FlagsFromString(sec.Key("FLAGS").String())
	}
	logger := log.GetLogger()
	logger.SetLevel(Log.Level)
	logger.Flags = Log.Flags
}
