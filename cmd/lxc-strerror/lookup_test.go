package main_test

import (
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Lookup", func() {
	var (
		args             []string
		session          *gexec.Session
		expectedExitCode int
	)

	BeforeEach(func() {
		args = []string{"lookup"}
		expectedExitCode = 0
	})

	JustBeforeEach(func() {
		var err error
		session, err = gexec.Start(exec.Command(strerrorBin, args...), GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())
		Eventually(session).Should(gexec.Exit(expectedExitCode))
	})

	Context("when given a numeric code", func() {
		BeforeEach(func() {
			args = append(args, "2")
		})

		It("prints the message", func() {
			Expect(string(session.Out.Contents())).To(Equal("The container was not found\n"))
		})
	})

	Context("when given several codes by name", func() {
		BeforeEach(func() {
			args = append(args, "CONF_NETWORK", "lxc_error_setup_rootfs", "0")
		})

		It("prints one message per line in order", func() {
			Expect(string(session.Out.Contents())).To(Equal(
				"Failed to configure the network\n" +
					"Failed to setup the root fs\n" +
					"The container is not running\n"))
		})
	})

	Context("when the code is out of range", func() {
		BeforeEach(func() {
			args = append(args, "15")
			expectedExitCode = 1
		})

		It("errors", func() {
			Expect(session.Err).To(gbytes.Say(`lookup: error code out of range \[0, 15\): 15`))
		})
	})

	Context("when the number overflows", func() {
		BeforeEach(func() {
			args = append(args, "99999999999999999999")
			expectedExitCode = 1
		})

		It("reports it as out of range", func() {
			Expect(session.Err).To(gbytes.Say(`lookup: error code out of range \[0, 15\): 99999999999999999999`))
		})
	})

	Context("when the name is unknown", func() {
		BeforeEach(func() {
			args = append(args, "CONF_DEVICES")
			expectedExitCode = 1
		})

		It("errors", func() {
			Expect(session.Err).To(gbytes.Say(`lookup: unknown error code name: "CONF_DEVICES"`))
		})
	})

	Context("when no code is given", func() {
		BeforeEach(func() {
			expectedExitCode = 1
		})

		It("prints the usage and errors", func() {
			Expect(session.Out).To(gbytes.Say("Incorrect Usage."))
			Expect(session.Err).To(gbytes.Say(`"lookup" requires a minimum of 1 argument\(s\)`))
		})
	})
})
