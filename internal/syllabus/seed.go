package syllabus

// DefaultRegistry returns a registry preloaded with the built-in exam
// catalogs. Additional exams can be layered on with LoadDir.
func DefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	for _, c := range []*Catalog{cloudArchitectCatalog(), k8sAdminCatalog()} {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// cloudArchitectCatalog models an associate-level cloud solutions
// architect exam: four domains with the official weight split.
func cloudArchitectCatalog() *Catalog {
	domains := []Domain{
		{ID: "secure-architectures", Name: "Design Secure Architectures", Weight: 0.30},
		{ID: "resilient-architectures", Name: "Design Resilient Architectures", Weight: 0.26},
		{ID: "high-performing-architectures", Name: "Design High-Performing Architectures", Weight: 0.24},
		{ID: "cost-optimized-architectures", Name: "Design Cost-Optimized Architectures", Weight: 0.20},
	}
	prereqs := []Prerequisite{
		{Cert: "cloud-practitioner", Strength: PrereqRequired},
	}
	questions := []Question{
		{
			ID: "sa-q1", DomainID: "secure-architectures", Difficulty: 2,
			Text: "Which service centrally manages encryption keys for data at rest?",
			Choices: []string{"A managed key management service", "A load balancer", "A DNS resolver", "A message queue"},
			CorrectIndex: 0,
		},
		{
			ID: "sa-q2", DomainID: "secure-architectures", Difficulty: 3,
			Text: "What is the recommended way to grant an application access to cloud APIs?",
			Choices: []string{"Embed long-lived access keys in code", "Attach a role with temporary credentials", "Share the root account password", "Disable authentication"},
			CorrectIndex: 1,
		},
		{
			ID: "sa-q3", DomainID: "secure-architectures", Difficulty: 3,
			Text: "Which control restricts inbound traffic to a single instance?",
			Choices: []string{"A billing alarm", "An instance-level firewall rule", "A storage lifecycle policy", "A certificate authority"},
			CorrectIndex: 1,
		},
		{
			ID: "ra-q1", DomainID: "resilient-architectures", Difficulty: 2,
			Text: "Deploying compute across multiple availability zones primarily improves what?",
			Choices: []string{"Billing granularity", "Fault tolerance", "API naming", "Key rotation"},
			CorrectIndex: 1,
		},
		{
			ID: "ra-q2", DomainID: "resilient-architectures", Difficulty: 3,
			Text: "Which pattern decouples producers from consumers to absorb traffic spikes?",
			Choices: []string{"Synchronous RPC", "Queue-based load leveling", "Shared mutable state", "Sticky sessions"},
			CorrectIndex: 1,
		},
		{
			ID: "ra-q3", DomainID: "resilient-architectures", Difficulty: 4,
			Text: "What does a health-check-driven failover policy on a DNS record provide?",
			Choices: []string{"Cheaper storage", "Automatic routing away from an unhealthy region", "Stronger encryption", "Faster builds"},
			CorrectIndex: 1,
		},
		{
			ID: "hp-q1", DomainID: "high-performing-architectures", Difficulty: 2,
			Text: "Which option reduces read latency for a globally distributed audience?",
			Choices: []string{"A content delivery network", "A larger database password", "A single-region cache", "Manual replication"},
			CorrectIndex: 0,
		},
		{
			ID: "hp-q2", DomainID: "high-performing-architectures", Difficulty: 3,
			Text: "When should a read replica be added to a relational database?",
			Choices: []string{"When write volume is the bottleneck", "When read volume is the bottleneck", "When storage is full", "When backups fail"},
			CorrectIndex: 1,
		},
		{
			ID: "co-q1", DomainID: "cost-optimized-architectures", Difficulty: 2,
			Text: "Which purchasing option best suits a steady, predictable compute workload?",
			Choices: []string{"On-demand only", "Reserved or committed-use capacity", "Spot capacity only", "A bigger instance"},
			CorrectIndex: 1,
		},
		{
			ID: "co-q2", DomainID: "cost-optimized-architectures", Difficulty: 3,
			Text: "What does an object storage lifecycle policy do?",
			Choices: []string{"Encrypts API calls", "Transitions cold data to cheaper tiers", "Scales compute", "Rotates credentials"},
			CorrectIndex: 1,
		},
	}
	return NewCatalog("cloud-architect", "Cloud Solutions Architect - Associate", 72.0, domains, prereqs, questions)
}

// k8sAdminCatalog models a Kubernetes administrator exam.
func k8sAdminCatalog() *Catalog {
	domains := []Domain{
		{ID: "cluster-architecture", Name: "Cluster Architecture, Installation & Configuration", Weight: 0.25},
		{ID: "workloads-scheduling", Name: "Workloads & Scheduling", Weight: 0.15},
		{ID: "services-networking", Name: "Services & Networking", Weight: 0.20},
		{ID: "storage", Name: "Storage", Weight: 0.10},
		{ID: "troubleshooting", Name: "Troubleshooting", Weight: 0.30},
	}
	prereqs := []Prerequisite{
		{Cert: "linux-foundation-sysadmin", Strength: PrereqRecommended},
	}
	questions := []Question{
		{
			ID: "ca-q1", DomainID: "cluster-architecture", Difficulty: 2,
			Text: "Which component persists the cluster's desired state?",
			Choices: []string{"etcd", "kubelet", "kube-proxy", "coredns"},
			CorrectIndex: 0,
		},
		{
			ID: "ca-q2", DomainID: "cluster-architecture", Difficulty: 3,
			Text: "Which mechanism grants a service account read access to pods in one namespace?",
			Choices: []string{"A ClusterRoleBinding to cluster-admin", "A Role plus RoleBinding", "A NetworkPolicy", "A PodDisruptionBudget"},
			CorrectIndex: 1,
		},
		{
			ID: "ws-q1", DomainID: "workloads-scheduling", Difficulty: 2,
			Text: "Which controller maintains a fixed number of identical pod replicas?",
			Choices: []string{"Job", "Deployment", "ConfigMap", "Ingress"},
			CorrectIndex: 1,
		},
		{
			ID: "ws-q2", DomainID: "workloads-scheduling", Difficulty: 3,
			Text: "What does a pod anti-affinity rule express?",
			Choices: []string{"Pods must share a node", "Pods should avoid co-locating with matching pods", "Pods need more CPU", "Pods mount the same volume"},
			CorrectIndex: 1,
		},
		{
			ID: "sn-q1", DomainID: "services-networking", Difficulty: 2,
			Text: "Which service type exposes a workload inside the cluster only?",
			Choices: []string{"NodePort", "LoadBalancer", "ClusterIP", "ExternalName"},
			CorrectIndex: 2,
		},
		{
			ID: "sn-q2", DomainID: "services-networking", Difficulty: 4,
			Text: "A NetworkPolicy with an empty pod selector in a namespace applies to which pods?",
			Choices: []string{"No pods", "All pods in the namespace", "Only system pods", "Pods in every namespace"},
			CorrectIndex: 1,
		},
		{
			ID: "st-q1", DomainID: "storage", Difficulty: 3,
			Text: "What binds a PersistentVolumeClaim to a PersistentVolume?",
			Choices: []string{"Matching capacity and access modes", "Pod labels", "Node taints", "Service selectors"},
			CorrectIndex: 0,
		},
		{
			ID: "tr-q1", DomainID: "troubleshooting", Difficulty: 2,
			Text: "A pod is stuck in CrashLoopBackOff. Which command shows why the process exits?",
			Choices: []string{"kubectl logs --previous", "kubectl expose", "kubectl cordon", "kubectl top node"},
			CorrectIndex: 0,
		},
		{
			ID: "tr-q2", DomainID: "troubleshooting", Difficulty: 3,
			Text: "A pod stays Pending with no events about images. What is the most likely cause?",
			Choices: []string{"DNS failure", "No schedulable node satisfies its resource requests", "Expired certificate", "Wrong service type"},
			CorrectIndex: 1,
		},
		{
			ID: "tr-q3", DomainID: "troubleshooting", Difficulty: 4,
			Text: "Which resource reports why a node became NotReady?",
			Choices: []string{"Node conditions in kubectl describe node", "The Ingress class", "A HorizontalPodAutoscaler", "The default StorageClass"},
			CorrectIndex: 0,
		},
	}
	return NewCatalog("k8s-admin", "Certified Kubernetes Administrator", 66.0, domains, prereqs, questions)
}
