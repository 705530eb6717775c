package rntable_test

import (
	"strings"

	"github.com/bsm/rntable"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("EncodeByName", func() {
	It("should encode", func() {
		data, err := rntable.EncodeByName(seedRecords(), seedNameValue, seedRootValue)
		Expect(err).NotTo(HaveOccurred())

		// 21 header + 5x14 index + 53 payloads
		Expect(data).To(HaveLen(144))
		Expect(data[:5]).To(Equal([]byte{5, 0, 0, 0, 9}))
	})

	It("should encode independently of input order", func() {
		records := seedRecords()
		data1, err := rntable.EncodeByName(records, seedNameValue, seedRootValue)
		Expect(err).NotTo(HaveOccurred())

		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
		data2, err := rntable.EncodeByName(records, seedNameValue, seedRootValue)
		Expect(err).NotTo(HaveOccurred())
		Expect(data2).To(Equal(data1))
	})

	It("should encode empty", func() {
		data, err := rntable.EncodeByName(nil, seedNameValue, seedRootValue)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(HaveLen(21))
		Expect(data[:5]).To(Equal([]byte{0, 0, 0, 0, 0}))
	})

	It("should reject invalid names", func() {
		_, err := rntable.EncodeByName([]rntable.Record{
			{Name: "", Target: "com."},
		}, seedNameValue, seedRootValue)
		Expect(err).To(MatchError(`rntable: name "" length must be 1-63 bytes`))

		_, err = rntable.EncodeByName([]rntable.Record{
			{Name: strings.Repeat("x", 64), Target: "com."},
		}, seedNameValue, seedRootValue)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("length must be 1-63 bytes"))
	})

	It("should reject invalid targets", func() {
		_, err := rntable.EncodeByName([]rntable.Record{
			{Name: "com", Target: ""},
		}, seedNameValue, seedRootValue)
		Expect(err).To(MatchError(`rntable: target of "com" length must be 1-255 bytes`))

		_, err = rntable.EncodeByName([]rntable.Record{
			{Name: "com", Target: strings.Repeat("x", 256)},
		}, seedNameValue, seedRootValue)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("length must be 1-255 bytes"))
	})

	It("should reject duplicate names", func() {
		_, err := rntable.EncodeByName([]rntable.Record{
			{Name: "com", Target: "com.", Root: true},
			{Name: "bitcoin", Target: "bitcoin."},
			{Name: "com", Target: "com.se."},
		}, seedNameValue, seedRootValue)
		Expect(err).To(MatchError(`rntable: duplicate name "com"`))
	})
})

var _ = Describe("EncodeByHash", func() {
	It("should encode", func() {
		data, err := rntable.EncodeByHash(seedRecords(), seedNameValue, seedRootValue, rntable.SHA3Name)
		Expect(err).NotTo(HaveOccurred())

		// 20 header + 5x36 index + 58 payloads
		Expect(data).To(HaveLen(258))
		Expect(data[:4]).To(Equal([]byte{5, 0, 0, 0}))
	})

	It("should encode independently of input order", func() {
		records := seedRecords()
		data1, err := rntable.EncodeByHash(records, seedNameValue, seedRootValue, rntable.SHA3Name)
		Expect(err).NotTo(HaveOccurred())

		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
		data2, err := rntable.EncodeByHash(records, seedNameValue, seedRootValue, rntable.SHA3Name)
		Expect(err).NotTo(HaveOccurred())
		Expect(data2).To(Equal(data1))
	})

	It("should require a hash function", func() {
		_, err := rntable.EncodeByHash(seedRecords(), seedNameValue, seedRootValue, nil)
		Expect(err).To(MatchError(`rntable: no hash function provided`))
	})

	It("should reject odd-sized hashes", func() {
		fn := func(name string) []byte { return []byte(name) }
		_, err := rntable.EncodeByHash(seedRecords(), seedNameValue, seedRootValue, fn)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("expected 32"))
	})

	It("should reject duplicate hashes", func() {
		_, err := rntable.EncodeByHash([]rntable.Record{
			{Name: "com", Target: "com.", Root: true},
			{Name: "com", Target: "com.se."},
		}, seedNameValue, seedRootValue, rntable.SHA3Name)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("duplicate hash"))
	})
})
