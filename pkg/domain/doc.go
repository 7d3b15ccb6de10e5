// Package domain contains the result types produced by a counting run. They
// carry no behavior so that the counter, the report writers and the metrics
// recorder can share them without depending on each other.
package domain
