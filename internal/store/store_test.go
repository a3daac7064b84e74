package store_test

import (
	"encoding/json"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/pf9/region-wizard/internal/models"
	"github.com/pf9/region-wizard/internal/store"
	srvErrors "github.com/pf9/region-wizard/pkg/errors"
)

const configDir = "/home/operator/.pf9-wizard"

func newRegion(url string) models.Region {
	return models.Region{
		URL:          url,
		Username:     "admin@platform9.net",
		Password:     "secret",
		Tenant:       "service",
		Name:         "region-one",
		AuthType:     models.AuthTypeSimple,
		AuthUsername: "ubuntu",
		AuthPassword: "winterwonderland",
		BondIfName:   "bond0",
		BondMode:     "1",
		BondMTU:      "9000",
	}
}

func kubeHost(url, ip string) models.Host {
	return models.Host{
		RegionURL:    url,
		IP:           ip,
		RecordSource: models.RecordSourceUserDefined,
		Placement:    models.KubernetesPlacement{NodeType: models.NodeTypeWorker},
	}
}

func kvmHost(url, ip string) models.Host {
	return models.Host{
		RegionURL:    url,
		IP:           ip,
		RecordSource: models.RecordSourceUserDefined,
		Placement: models.KVMPlacement{
			Nova:      models.ToggleYes,
			Glance:    models.ToggleNo,
			Cinder:    models.ToggleNo,
			Designate: models.ToggleNo,
		},
	}
}

var _ = Describe("Store", func() {
	var (
		fs afero.Fs
		s  *store.Store
	)

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		s = store.NewStore(fs, configDir)
	})

	Context("RegionStore", func() {
		// Given a store whose directory was never written
		// When we list regions
		// Then it should return an empty collection without creating anything
		It("should return no regions when the file does not exist", func() {
			regions, err := s.Regions().List()

			Expect(err).NotTo(HaveOccurred())
			Expect(regions).To(BeEmpty())

			exists, err := afero.DirExists(fs, configDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		// Given an empty store
		// When we append a region
		// Then the directory and du.conf should be created and the region listed last
		It("should create the directory and file on first append", func() {
			// Arrange
			r := newRegion("https://a.example")

			// Act
			err := s.Regions().Append(r)

			// Assert
			Expect(err).NotTo(HaveOccurred())
			exists, err := afero.Exists(fs, filepath.Join(configDir, store.RegionsFile))
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			regions, err := s.Regions().List()
			Expect(err).NotTo(HaveOccurred())
			Expect(regions).To(HaveLen(1))
			Expect(regions[len(regions)-1]).To(Equal(r))
		})

		// Given a region already stored
		// When the same record is appended again
		// Then both entries should be kept
		It("should keep duplicate records", func() {
			r := newRegion("https://a.example")
			Expect(s.Regions().Append(r)).To(Succeed())
			Expect(s.Regions().Append(r)).To(Succeed())

			regions, err := s.Regions().List()
			Expect(err).NotTo(HaveOccurred())
			Expect(regions).To(Equal([]models.Region{r, r}))
		})

		It("should append after existing records", func() {
			first := newRegion("https://a.example")
			second := newRegion("https://b.example")
			Expect(s.Regions().Append(first)).To(Succeed())
			Expect(s.Regions().Append(second)).To(Succeed())

			regions, err := s.Regions().List()
			Expect(err).NotTo(HaveOccurred())
			Expect(regions).To(HaveLen(2))
			Expect(regions[1].URL).To(Equal("https://b.example"))
		})

		It("should write the du.conf keys", func() {
			Expect(s.Regions().Append(newRegion("https://a.example"))).To(Succeed())

			data, err := afero.ReadFile(fs, filepath.Join(configDir, store.RegionsFile))
			Expect(err).NotTo(HaveOccurred())

			var raw []map[string]any
			Expect(json.Unmarshal(data, &raw)).To(Succeed())
			Expect(raw).To(HaveLen(1))
			Expect(raw[0]).To(HaveKeyWithValue("url", "https://a.example"))
			Expect(raw[0]).To(HaveKeyWithValue("region", "region-one"))
			Expect(raw[0]).To(HaveKeyWithValue("bond_ifname", "bond0"))
			Expect(raw[0]).To(HaveKeyWithValue("auth_type", "simple"))
		})

		Context("Find", func() {
			It("should return the first region with a matching url", func() {
				first := newRegion("https://a.example")
				first.Name = "first"
				second := newRegion("https://a.example")
				second.Name = "second"
				Expect(s.Regions().Append(first)).To(Succeed())
				Expect(s.Regions().Append(second)).To(Succeed())

				found, err := s.Regions().Find("https://a.example")

				Expect(err).NotTo(HaveOccurred())
				Expect(found.Name).To(Equal("first"))
			})

			It("should return ResourceNotFoundError when the store is empty", func() {
				_, err := s.Regions().Find("https://a.example")

				Expect(err).To(HaveOccurred())
				Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
			})

			It("should return ResourceNotFoundError when no url matches", func() {
				Expect(s.Regions().Append(newRegion("https://a.example"))).To(Succeed())

				_, err := s.Regions().Find("https://b.example")

				Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
			})
		})
	})

	Context("HostStore", func() {
		// Given hosts stored for two regions
		// When we list with and without a region filter
		// Then only the matching hosts are returned when filtered
		It("should filter hosts by region url", func() {
			// Arrange
			Expect(s.Hosts().Append(kubeHost("https://a.example", "10.0.0.5"))).To(Succeed())
			Expect(s.Hosts().Append(kvmHost("https://b.example", "10.0.1.5"))).To(Succeed())
			Expect(s.Hosts().Append(kubeHost("https://a.example", "10.0.0.6"))).To(Succeed())

			// Act
			all, err := s.Hosts().List()
			Expect(err).NotTo(HaveOccurred())
			onlyA, err := s.Hosts().List(store.ByRegion("https://a.example"))
			Expect(err).NotTo(HaveOccurred())

			// Assert
			Expect(all).To(HaveLen(3))
			Expect(onlyA).To(HaveLen(2))
			for _, h := range onlyA {
				Expect(h.RegionURL).To(Equal("https://a.example"))
			}
		})

		It("should return an empty list for an unknown region", func() {
			Expect(s.Hosts().Append(kubeHost("https://a.example", "10.0.0.5"))).To(Succeed())

			hosts, err := s.Hosts().List(store.ByRegion("https://c.example"))

			Expect(err).NotTo(HaveOccurred())
			Expect(hosts).To(BeEmpty())
		})

		It("should filter hosts by placement flavor", func() {
			Expect(s.Hosts().Append(kubeHost("https://a.example", "10.0.0.5"))).To(Succeed())
			Expect(s.Hosts().Append(kvmHost("https://a.example", "10.0.0.6"))).To(Succeed())

			hosts, err := s.Hosts().List(store.ByRegionType(models.RegionTypeKVM))

			Expect(err).NotTo(HaveOccurred())
			Expect(hosts).To(HaveLen(1))
			Expect(hosts[0].IP).To(Equal("10.0.0.6"))
		})

		It("should round trip both placement variants", func() {
			k8s := kubeHost("https://a.example", "10.0.0.5")
			k8s.Placement = models.KubernetesPlacement{NodeType: models.NodeTypeMaster, ClusterName: "prod"}
			kvm := kvmHost("https://a.example", "10.0.0.6")
			Expect(s.Hosts().Append(k8s)).To(Succeed())
			Expect(s.Hosts().Append(kvm)).To(Succeed())

			hosts, err := s.Hosts().List()

			Expect(err).NotTo(HaveOccurred())
			Expect(hosts).To(Equal([]models.Host{k8s, kvm}))
		})

		// Given a hosts.conf written by the previous tool without region_type
		// When we list hosts
		// Then each record should get the placement implied by its fields
		It("should load records without a region type discriminator", func() {
			legacy := `[
				{"du_url": "https://a.example", "ip": "10.0.0.5", "record_source": "User-Defined",
				 "bond_config": "", "nova": "", "glance": "", "cinder": "", "designate": "",
				 "node_type": "worker", "cluster_name": ""},
				{"du_url": "https://b.example", "ip": "10.0.1.5", "record_source": "User-Defined",
				 "bond_config": "eth1", "nova": "y", "glance": "n", "cinder": "n", "designate": "y",
				 "node_type": "", "cluster_name": ""}
			]`
			Expect(afero.WriteFile(fs, filepath.Join(configDir, store.HostsFile), []byte(legacy), 0o600)).To(Succeed())

			hosts, err := s.Hosts().List()

			Expect(err).NotTo(HaveOccurred())
			Expect(hosts).To(HaveLen(2))
			k8s, ok := hosts[0].Kubernetes()
			Expect(ok).To(BeTrue())
			Expect(k8s.NodeType).To(Equal(models.NodeTypeWorker))
			kvm, ok := hosts[1].KVM()
			Expect(ok).To(BeTrue())
			Expect(kvm.BondConfig).To(Equal("eth1"))
			Expect(kvm.Designate).To(Equal(models.ToggleYes))
		})
	})

	Context("Failures", func() {
		It("should return a PersistenceError when the directory cannot be created", func() {
			ro := store.NewStore(afero.NewReadOnlyFs(afero.NewMemMapFs()), configDir)

			err := ro.Hosts().Append(kubeHost("https://a.example", "10.0.0.5"))

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsPersistenceError(err)).To(BeTrue())
		})

		It("should fail to list a file that is not a JSON array", func() {
			Expect(afero.WriteFile(fs, filepath.Join(configDir, store.RegionsFile), []byte("{not json"), 0o600)).To(Succeed())

			_, err := s.Regions().List()

			Expect(err).To(HaveOccurred())
		})

		It("should treat an empty file as an empty collection", func() {
			Expect(afero.WriteFile(fs, filepath.Join(configDir, store.HostsFile), nil, 0o600)).To(Succeed())

			hosts, err := s.Hosts().List()

			Expect(err).NotTo(HaveOccurred())
			Expect(hosts).To(BeEmpty())
		})
	})
})
