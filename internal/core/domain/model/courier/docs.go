// Package courier contains the Courier aggregate. Couriers are long-lived
// reference data managed outside this core: order creation only reads the
// availability flag to pick someone for the job, it never mutates it.
package courier
