// Package types defines the finplan entities (plan templates, simulators,
// accounts, recommendations), the interfaces their creators satisfy, and the
// standard error types shared by every pattern package.
package types
