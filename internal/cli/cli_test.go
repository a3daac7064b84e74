package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/pf9/region-wizard/internal/cli"
	"github.com/pf9/region-wizard/internal/models"
	"github.com/pf9/region-wizard/internal/store"
	"github.com/pf9/region-wizard/test"
)

const configDir = "/wizard"

var _ = Describe("region-wizard", func() {
	var (
		fs   afero.Fs
		out  *bytes.Buffer
		fake *test.FakeRegion
	)

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		out = &bytes.Buffer{}
		fake = test.NewFakeRegion()
	})

	AfterEach(func() {
		fake.Close()
	})

	run := func(input []string, args ...string) error {
		cmd := cli.RootCmd(context.Background(), fs)
		cmd.SetArgs(append([]string{"--config-dir", configDir, "--log-level", "error"}, args...))
		cmd.SetIn(strings.NewReader(strings.Join(input, "\n") + "\n"))
		cmd.SetOut(out)
		return cmd.Execute()
	}

	regionAnswers := func(url, password string) []string {
		username, _, tenant := fake.Credentials()
		return []string{
			url, username, password, tenant, "region-one", "", "",
			"ssh-key", "ubuntu", "~/.ssh/id_rsa", "", "", "",
		}
	}

	registerRegion := func(url, password string) {
		st := store.NewStore(fs, configDir)
		username, _, tenant := fake.Credentials()
		Expect(st.Regions().Append(models.Region{
			URL: url, Username: username, Password: password, Tenant: tenant,
			AuthType: models.AuthTypeSSHKey, AuthUsername: "ubuntu", AuthSSHKey: "~/.ssh/id_rsa",
		})).To(Succeed())
	}

	readHosts := func() []map[string]any {
		data, err := afero.ReadFile(fs, filepath.Join(configDir, store.HostsFile))
		Expect(err).NotTo(HaveOccurred())
		var hosts []map[string]any
		Expect(json.Unmarshal(data, &hosts)).To(Succeed())
		return hosts
	}

	Context("region", func() {
		It("should print a hint when no region is registered", func() {
			Expect(run(nil, "region", "list")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("No regions have been defined yet"))
		})

		It("should register a region and show its status", func() {
			fake.WithKVM().WithHostCount(4)
			_, password, _ := fake.Credentials()

			Expect(run(regionAnswers(fake.URL(), password), "region", "add")).To(Succeed())

			data, err := afero.ReadFile(fs, filepath.Join(configDir, store.RegionsFile))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring(`"url":"` + fake.URL() + `"`))
			Expect(out.String()).To(ContainSubstring("KVM"))
			Expect(out.String()).To(MatchRegexp(`OK\s+KVM\s+region-one`))
		})

		It("should keep a region that cannot be reached", func() {
			Expect(run(regionAnswers(fake.URL(), "wrong"), "region", "add")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("Failed"))
			exists, err := afero.Exists(fs, filepath.Join(configDir, store.RegionsFile))
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})
	})

	Context("host", func() {
		It("should add a worker to a Kubernetes region", func() {
			// Given
			fake.WithKubernetes()
			_, password, _ := fake.Credentials()
			registerRegion(fake.URL(), password)

			// When: select the region, then ip, node type and no cluster
			err := run([]string{"1", "10.0.0.5", "worker", ""}, "host", "add")

			// Then
			Expect(err).NotTo(HaveOccurred())
			hosts := readHosts()
			Expect(hosts).To(HaveLen(1))
			Expect(hosts[0]).To(HaveKeyWithValue("du_url", fake.URL()))
			Expect(hosts[0]).To(HaveKeyWithValue("ip", "10.0.0.5"))
			Expect(hosts[0]).To(HaveKeyWithValue("node_type", "worker"))
			Expect(hosts[0]).To(HaveKeyWithValue("cluster_name", ""))
			Expect(hosts[0]).To(HaveKeyWithValue("record_source", "User-Defined"))
		})

		It("should not write anything when login fails", func() {
			fake.WithKubernetes()
			registerRegion(fake.URL(), "wrong")

			Expect(run([]string{"1"}, "host", "add")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("failed to login to region " + fake.URL()))
			exists, err := afero.Exists(fs, filepath.Join(configDir, store.HostsFile))
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("should abandon VMware regions", func() {
			_, password, _ := fake.Credentials()
			registerRegion(fake.URL(), password)

			Expect(run([]string{"1"}, "host", "add")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("unsupported region type VMware"))
		})

		It("should list the hosts of a region", func() {
			fake.WithKVM()
			_, password, _ := fake.Credentials()
			registerRegion(fake.URL(), password)
			Expect(store.NewStore(fs, configDir).Hosts().Append(models.Host{
				RegionURL: fake.URL(), IP: "10.0.0.7", RecordSource: models.RecordSourceUserDefined,
				Placement: models.KVMPlacement{BondConfig: "eth1", Nova: models.ToggleYes, Glance: models.ToggleNo, Cinder: models.ToggleNo, Designate: models.ToggleNo},
			})).To(Succeed())

			Expect(run([]string{"1"}, "host", "list")).To(Succeed())

			Expect(out.String()).To(MatchRegexp(`10\.0\.0\.7\s+User-Defined\s+Enabled\s+Disabled`))
		})

		It("should print a hint when no region is registered", func() {
			Expect(run(nil, "host", "add")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("No regions have been defined yet"))
		})
	})

	Context("menu", func() {
		It("should quit on q", func() {
			Expect(run([]string{"q"})).To(Succeed())

			Expect(out.String()).To(ContainSubstring("1. Add Region"))
			Expect(out.String()).To(ContainSubstring("5. Attach Hosts"))
		})

		It("should report that attaching hosts is not implemented", func() {
			Expect(run([]string{"5", "q"})).To(Succeed())

			Expect(out.String()).To(ContainSubstring("Attach Hosts is not implemented yet"))
		})

		It("should stop when the input ends", func() {
			Expect(run([]string{"3"})).To(Succeed())

			Expect(out.String()).To(ContainSubstring("No regions have been defined yet"))
		})
	})

	Context("export", func() {
		It("should write a workbook", func() {
			_, password, _ := fake.Credentials()
			registerRegion(fake.URL(), password)
			output := filepath.Join(GinkgoT().TempDir(), "inventory.xlsx")

			Expect(run(nil, "export", "--output", output)).To(Succeed())

			Expect(output).To(BeAnExistingFile())
			Expect(out.String()).To(ContainSubstring("exported 1 regions and 0 hosts"))
		})
	})

	It("should reject an invalid log format", func() {
		err := run(nil, "--log-format", "xml", "region", "list")

		Expect(err).To(MatchError(ContainSubstring("invalid log format")))
	})
})
