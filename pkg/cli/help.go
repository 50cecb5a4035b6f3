package cli

import "fmt"

// ShowHelp prints the usage text.
func ShowHelp() {
	fmt.Print(`cg-dashboard: cloud.gov dashboard command-line tool
Usage:
  cg-dashboard <command> [options]

Commands:
  routes    Show the routes of an app
  version   Print the build version

Options for routes:
  -config string   path to dashboard.json config file (default "/etc/cg-dashboard/dashboard.json")
  -app string      guid of the app whose routes to list
  -plain           print the list once instead of starting the interactive view

Keys in the interactive view:
  up/down   move the selection
  c         copy the selected route URL
  q         quit

Examples:
  # Browse an app's routes
  cg-dashboard routes -app 6064d98a-95e6-400b-bc03-be65e6d59622

  # Print them for a script
  cg-dashboard routes -plain -app 6064d98a-95e6-400b-bc03-be65e6d59622
`)
}
