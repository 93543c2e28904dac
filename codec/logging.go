/*
   Copyright (c) 2023, btnmasher
   All rights reserved.
   Use of this source code is governed by a BSD-style
   license that can be found in the LICENSE file.
*/

package codec

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log = logrus.NewEntry(discardLogger())

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger installs the *logrus.Entry used for tolerated-anomaly
// warnings (an unknown MODE letter, for instance). The package is silent
// by default; callers opt in the same way the teacher wires a logger
// into package state before first use in Warmup.
func SetLogger(entry *logrus.Entry) {
	if entry == nil {
		return
	}
	log = entry
}
