// Package fileutil provides the file-system queries shared by the dataset
// operations.
//
// # Presence
//
// IsRegularFile answers the presence question used by the dispatch engine:
// a declared path counts only if it names an existing regular file. Symlinks
// are followed; directories, sockets and broken links do not count.
//
// # Prefix scans
//
// MatchPrefix backs the discovery wizard. It expands "<prefix>*" the way a
// shell would, keeps regular files only and returns them sorted so that the
// numbering shown to the user is stable across runs:
//
//	candidates, err := fileutil.MatchPrefix("/data/run42/lib1_")
//	if err != nil {
//	    return err
//	}
//	for i, c := range candidates {
//	    fmt.Println(i, ":", c.Name())
//	}
//
// The prefix is a glob itself, so "/data/run*/lib1_" scans every run
// directory. An empty result is not an error.
package fileutil
