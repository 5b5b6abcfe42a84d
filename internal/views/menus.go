package views

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// SetupMenus installs the window menu; actions go through the same handlers as the buttons
func (mv *MainView) SetupMenus(appName, version string) {
	recordsMenu := fyne.NewMenu("Records",
		fyne.NewMenuItem("Add...", func() {
			if mv.addHandler != nil {
				mv.addHandler()
			}
		}),
		fyne.NewMenuItem("Report", func() {
			if mv.reportHandler != nil {
				mv.reportHandler()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear", func() {
			if mv.clearHandler != nil {
				mv.clearHandler()
			}
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About", fmt.Sprintf("%s %s", appName, version), mv.window)
		}),
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(recordsMenu, helpMenu))
}
