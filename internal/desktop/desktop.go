// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

//go:build !js

// desktop provides file choosing and notifications using the native
// dialogs and notification system of the operating system, for use
// without the full graphical interface.
package desktop

import (
	"errors"
	"log"
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
	"github.com/sqweek/dialog"
)

const appName = "bwsmooth"

// Native asks for files with the native dialogs, and notifies with
// desktop notifications, falling back to a message box if they are
// not available.
type Native struct {
	Logger *log.Logger
}

func (n Native) ChooseOpenPath() (string, error) {
	fn, err := dialog.File().Title("Select PNG Image").Filter("PNG Images", "png").Load()
	return cancelled(fn, err)
}

func (n Native) ChooseSavePath(defaultName string) (string, error) {
	fn, err := dialog.File().Title("Save Smoothed Black & White Image").Filter("PNG Images", "png").SetStartFile(defaultName).Save()
	return cancelled(fn, err)
}

func (n Native) Notify(message string) {
	if n.Logger != nil {
		n.Logger.Println(message)
	}
	if haveDisplay(runtime.GOOS, os.Getenv) {
		err := beeep.Notify(appName, message, "")
		if err == nil {
			return
		}
		if n.Logger != nil {
			n.Logger.Println("Error sending notification, showing message box instead:", err)
		}
	}
	dialog.Message("%s", message).Title(appName).Info()
}

// cancelled turns a cancelled dialog into an empty path
func cancelled(fn string, err error) (string, error) {
	if errors.Is(err, dialog.Cancelled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return fn, nil
}

// haveDisplay reports whether a desktop notification could be shown.
// Linux without an X or Wayland display has nowhere to show one.
func haveDisplay(goos string, getenv func(string) string) bool {
	if goos != "linux" {
		return true
	}
	return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
}
