// Package ws streams compositor events over WebSocket.
//
// Clients connect to /stream and receive a layout_pass message after
// every layout pass, carrying the resolved frames and crops for each
// window on the display. The handler also answers ping messages so
// clients can keep connections alive through proxies.
package ws
