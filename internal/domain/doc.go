// Package domain defines core data models, error values and interfaces shared
// across passvault. It contains plain types and contracts only.
package domain
