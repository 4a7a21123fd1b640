// Command isoskema validates ISO 20022 documents, converts them between XML
// and JSON and prints the JSON Schema of the supported messages.
package main

func main() {
	Execute()
}
