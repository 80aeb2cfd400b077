package executor

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/klog/v2"

	"kubesql/catalog"
	"kubesql/parser"
)

// ClientFactory yields a clientset for a named kubeconfig context.
type ClientFactory func(context string) (kubernetes.Interface, error)

// KubeconfigClientFactory builds clientsets from the catalog's kubeconfig.
func KubeconfigClientFactory(ct *catalog.Catalog) ClientFactory {
	return func(name string) (kubernetes.Interface, error) {
		config, err := ct.RESTConfig(name)
		if err != nil {
			return nil, err
		}
		return kubernetes.NewForConfig(config)
	}
}

// Result is the listing for one (context, namespace, kind) cell of the plan.
type Result struct {
	Context   string
	Namespace string
	Kind      parser.ResourceType
	Names     []string
}

type SimpleExecutor struct {
	clients ClientFactory
}

func NewSimpleExecutor(clients ClientFactory) *SimpleExecutor {
	return &SimpleExecutor{clients: clients}
}

// Execute runs the plan's list calls, fanning out one goroutine per context.
// The plan is read-only here and every goroutine writes a disjoint slot, so
// no locking is involved. Results come back ordered by context, namespace,
// then kind.
func (e *SimpleExecutor) Execute(ctx context.Context, plan *parser.QueryPlan) ([]Result, error) {
	kinds, err := PlanKinds(plan)
	if err != nil {
		return nil, err
	}

	selectors := make(map[parser.ResourceType][]string, len(kinds))
	for _, kind := range kinds {
		if selectors[kind], err = CompileSelectors(plan.Queries, kind); err != nil {
			return nil, err
		}
	}

	perContext := make([][]Result, len(plan.Contexts))
	errs := make([]error, len(plan.Contexts))

	var wg sync.WaitGroup
	for i, name := range plan.Contexts {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			perContext[i], errs[i] = e.executeContext(ctx, plan, kinds, selectors, name)
		}(i, name)
	}
	wg.Wait()

	var results []Result
	for i := range perContext {
		if errs[i] != nil {
			return nil, errs[i]
		}
		results = append(results, perContext[i]...)
	}
	return results, nil
}

func (e *SimpleExecutor) executeContext(
	ctx context.Context,
	plan *parser.QueryPlan,
	kinds []parser.ResourceType,
	selectors map[parser.ResourceType][]string,
	name string,
) ([]Result, error) {
	client, err := e.clients(name)
	if err != nil {
		return nil, errors.Wrapf(err, "client for context %s", name)
	}

	var results []Result
	for _, ns := range plan.Namespaces {
		for _, kind := range kinds {
			var names []string
			seen := make(map[string]bool)
			for _, selector := range selectors[kind] {
				klog.V(4).Infof("listing %s in %s/%s with field selector %q", kind, name, ns, selector)
				listed, err := listNames(ctx, client, kind, ns, selector)
				if err != nil {
					return nil, errors.Wrapf(err, "list %s in %s/%s", kind, name, ns)
				}
				for _, n := range listed {
					if !seen[n] {
						seen[n] = true
						names = append(names, n)
					}
				}
			}
			results = append(results, Result{Context: name, Namespace: ns, Kind: kind, Names: names})
		}
	}
	return results, nil
}

// PlanKinds returns the distinct resource kinds of the clause chain in first
// mention order.
func PlanKinds(plan *parser.QueryPlan) ([]parser.ResourceType, error) {
	var kinds []parser.ResourceType
	seen := make(map[parser.ResourceType]bool)
	for _, q := range plan.Queries {
		kind, err := parser.ParseResourceType(q.Kind)
		if err != nil {
			return nil, err
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

func listNames(ctx context.Context, client kubernetes.Interface, kind parser.ResourceType, namespace, selector string) ([]string, error) {
	opts := metav1.ListOptions{FieldSelector: selector}

	switch kind {
	case parser.ResourceDeployment:
		list, err := client.AppsV1().Deployments(namespace).List(ctx, opts)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(list.Items))
		for _, item := range list.Items {
			names = append(names, item.Name)
		}
		return names, nil
	case parser.ResourcePod:
		list, err := client.CoreV1().Pods(namespace).List(ctx, opts)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(list.Items))
		for _, item := range list.Items {
			names = append(names, item.Name)
		}
		return names, nil
	case parser.ResourceService:
		list, err := client.CoreV1().Services(namespace).List(ctx, opts)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(list.Items))
		for _, item := range list.Items {
			names = append(names, item.Name)
		}
		return names, nil
	default:
		return nil, errors.Errorf("not supported resource type: %s", kind)
	}
}
