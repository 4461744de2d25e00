// Package app holds the interactive question-and-answer loop of mrtguide,
// independent of how lines are read from the user.
package app
