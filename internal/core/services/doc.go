// Package services implements the driving ports. SearchService loads a
// document and filters its lines; SettingsService validates and
// persists the defaults. Both depend only on domain types and the
// driven ports, never on an adapter.
package services
