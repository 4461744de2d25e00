// Command mrtguide finds MRT routes from the command line.
//
//	mrtguide route "Holland Village" Bugis --at 2019-01-31T16:00
//	mrtguide interactive
//	mrtguide info
package main

func main() {
	Execute()
}
