/*
 * log.go, part of molcheck.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package molcheck

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logmu  sync.RWMutex
	logger = zap.NewNop()
)

//SetLogger sets the logger used to report skipped lines and recovered
//failures. A nil logger silences the package, which is also the default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logmu.Lock()
	logger = l
	logmu.Unlock()
}

func log() *zap.Logger {
	logmu.RLock()
	defer logmu.RUnlock()
	return logger
}
