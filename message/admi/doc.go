// Package admi implements the administrative message family: system event
// notifications (admi.004) and receipt acknowledgements (admi.007).
package admi
