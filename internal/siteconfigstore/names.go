package siteconfigstore

import "strings"

// candidateNames produces the ordered list of directive file names §4.9
// searches for a given host: the host itself, the host with a leading
// www. dropped, a wildcard-suffix variant, then every suffix obtained by
// dropping leftmost labels down to two, each as a plain and wildcard name.
func candidateNames(host string) []string {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return nil
	}

	names := []string{host + ".txt"}

	withoutWWW := strings.TrimPrefix(host, "www.")
	if withoutWWW != host {
		names = append(names, withoutWWW+".txt")
	}

	names = append(names, "."+host+".txt")

	labels := strings.Split(host, ".")
	for len(labels) > 2 {
		labels = labels[1:]
		suffix := strings.Join(labels, ".")
		names = append(names, suffix+".txt", "."+suffix+".txt")
	}

	return names
}
