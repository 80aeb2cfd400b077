package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// ContextNotFoundError lists every requested context absent from the
// kubeconfig. Mismatches are reported together, never silently dropped.
type ContextNotFoundError struct {
	Names []string
}

func (e *ContextNotFoundError) Error() string {
	return fmt.Sprintf("context not found in your KUBECONFIG: %s", strings.Join(e.Names, ", "))
}

// Catalog is the set of contexts known to the local kubeconfig. It is the
// validation source for context names appearing in queries and the factory
// for per-context client configs.
type Catalog struct {
	config *clientcmdapi.Config
}

// Load reads the kubeconfig at path. With an empty path the default loading
// rules apply (KUBECONFIG, then ~/.kube/config).
func Load(path string) (*Catalog, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if path != "" {
		rules.ExplicitPath = path
	}
	config, err := rules.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load kubeconfig")
	}
	return &Catalog{config: config}, nil
}

// NewCatalog wraps an already loaded kubeconfig.
func NewCatalog(config *clientcmdapi.Config) *Catalog {
	return &Catalog{config: config}
}

// ContextNames returns the known context names, sorted for stable output.
func (c *Catalog) ContextNames() []string {
	names := make([]string, 0, len(c.config.Contexts))
	for name := range c.config.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateContexts checks that every requested context exists.
func (c *Catalog) ValidateContexts(names []string) error {
	var notFound []string
	for _, name := range names {
		if _, ok := c.config.Contexts[name]; !ok {
			notFound = append(notFound, name)
		}
	}
	if len(notFound) > 0 {
		return &ContextNotFoundError{Names: notFound}
	}
	return nil
}

// RESTConfig builds a client config pinned to the given context.
func (c *Catalog) RESTConfig(context string) (*rest.Config, error) {
	config, err := clientcmd.NewNonInteractiveClientConfig(
		*c.config, context, &clientcmd.ConfigOverrides{}, nil,
	).ClientConfig()
	if err != nil {
		return nil, errors.Wrapf(err, "client config for context %s", context)
	}
	return config, nil
}
