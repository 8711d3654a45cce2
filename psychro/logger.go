// Copyright (C) 2026, Benjamin Drung <bdrung@posteo.de>
// SPDX-License-Identifier: ISC

package psychro

import logger "github.com/d2r2/go-logger"

var lg = logger.NewPackageLogger("psychro", logger.InfoLevel)
