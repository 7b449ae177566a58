// Package explorer holds the file-system side of the file explorer: drive
// roots, the directory model the tree renders, the Open/Paste/Delete
// pass-throughs, file URL clipboard encoding and the directory watcher.
//
// Nothing here touches widgets. The gui package calls into it on the UI
// thread and turns every returned error into a single generic dialog.
package explorer
