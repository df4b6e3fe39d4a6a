// Package adapter maps an export onto the file layout each platform expects.
//
// Every supported platform has one Adapter that answers four questions:
//   - which extensions to request from Loco (AllowedExtensions)
//   - which sub-directory a locale goes to (Directory)
//   - the base filename (DefaultFileName)
//   - the final filename of a fetched payload (WriteLocale)
//
// Android and iOS tell locales apart by directory (values-fr/, fr.lproj/) and reuse the
// same filename. Flutter, Xamarin and Custom keep every locale in the export root and
// tell them apart by filename.
//
// Usage:
//
//	a, err := adapter.New(adapter.PlatformAndroid, adapter.Options{})
//	if err != nil {
//	    return err
//	}
//	dir := filepath.Join(root, a.Directory("fr", false)) // root/values-fr
//	path, err := a.WriteLocale(afero.NewOsFs(), dir, payload, "fr", ".xml", false)
package adapter
