// Package filesystem implements driven.DocumentSource for the local
// filesystem. It loads UTF-8 text files into domain Documents and can
// watch a file for changes using OS notifications.
package filesystem
