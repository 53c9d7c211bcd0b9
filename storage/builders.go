package storage

// DefaultOTA1PartitionLabel is the conventional ESP-IDF label for the
// second OTA application slot. The OTA1 builders below default to it so
// callers only need to supply the FlashIo adapter for that partition.
const DefaultOTA1PartitionLabel = "ota_1"

// BufferedStoreFromHAL composes flash into a buffered ReadSource,
// copying regionLen bytes into scratch (or a freshly allocated buffer)
// up front.
func BufferedStoreFromHAL(flash FlashIo, regionLen uint32, scratch []byte) (*HalBufferedSource, error) {
	return NewHalBufferedSource(flash, regionLen, scratch)
}

// OnDemandStoreFromHAL composes flash into an on-demand ReadSource that
// forwards every read straight to the device.
func OnDemandStoreFromHAL(flash FlashIo, regionLen uint32) *HalOnDemandSource {
	return NewHalOnDemandSource(flash, regionLen)
}

// OTA1Flash is a FlashIo paired with the partition label it was opened
// against, so the OTA1 builders can record which slot a source came
// from (useful for logging when a device carries more than one OTA
// partition).
type OTA1Flash struct {
	FlashIo
	Label string
}

// BufferedStoreOTA1 wraps flash as a buffered ReadSource, tagging it
// with DefaultOTA1PartitionLabel unless label is overridden.
func BufferedStoreOTA1(flash FlashIo, regionLen uint32, scratch []byte, label string) (*HalBufferedSource, error) {
	if label == "" {
		label = DefaultOTA1PartitionLabel
	}
	return NewHalBufferedSource(OTA1Flash{FlashIo: flash, Label: label}, regionLen, scratch)
}

// OnDemandStoreOTA1 wraps flash as an on-demand ReadSource, tagging it
// with DefaultOTA1PartitionLabel unless label is overridden.
func OnDemandStoreOTA1(flash FlashIo, regionLen uint32, label string) *HalOnDemandSource {
	if label == "" {
		label = DefaultOTA1PartitionLabel
	}
	return NewHalOnDemandSource(OTA1Flash{FlashIo: flash, Label: label}, regionLen)
}
