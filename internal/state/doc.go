// Package state holds the shared, thread-safe container for captured serial
// output and link status. The serial reader writes, the UI and the log saver
// read snapshots at their own pace.
package state
