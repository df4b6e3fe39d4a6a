// Package loco downloads translation files from the Loco export API.
//
// One Fetch call maps to one request:
//
//	GET https://localise.biz/api/export/locale/{locale}{extension}?{params}
//	Authorization: Loco {key}
//
// Only HTTP 200 is a success. The body is converted to UTF-8 when the response declares
// another charset. Any other status is logged as a warning and returned as a *FetchError,
// which matches ErrNoPayload. Requests are never retried.
package loco
