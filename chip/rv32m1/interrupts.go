package rv32m1

import "omibyte.io/vega/irq"

// Core exceptions. The RI5CY and zero-riscy cores dispatch them through
// vector entries 32 to 35, after the 32 directly wired device interrupts.
const (
	IRQ_Reset              irq.IRQ = -4
	IRQ_IllegalInstruction irq.IRQ = -3
	IRQ_Ecall              irq.IRQ = -2
	IRQ_LoadStoreError     irq.IRQ = -1
)

// Device interrupts of the zero-riscy core. Vectors from INTMUX_IRQ_START up
// reach the core through INTMUX1 rather than directly.
const (
	IRQ_DMA1_04                 irq.IRQ = 0
	IRQ_DMA1_15                 irq.IRQ = 1
	IRQ_DMA1_26                 irq.IRQ = 2
	IRQ_DMA1_37                 irq.IRQ = 3
	IRQ_DMA1_Error              irq.IRQ = 4
	IRQ_CMC1                    irq.IRQ = 5
	IRQ_LLWU1                   irq.IRQ = 6
	IRQ_MUB                     irq.IRQ = 7
	IRQ_WDOG1                   irq.IRQ = 8
	IRQ_CAU3_Task_Complete      irq.IRQ = 9
	IRQ_CAU3_Security_Violation irq.IRQ = 10
	IRQ_TRNG                    irq.IRQ = 11
	IRQ_LPIT1                   irq.IRQ = 12
	IRQ_LPTMR2                  irq.IRQ = 13
	IRQ_TPM3                    irq.IRQ = 14
	IRQ_LPI2C3                  irq.IRQ = 15
	IRQ_RF0_0                   irq.IRQ = 16
	IRQ_RF0_1                   irq.IRQ = 17
	IRQ_LPSPI3                  irq.IRQ = 18
	IRQ_LPUART3                 irq.IRQ = 19
	IRQ_PORTE                   irq.IRQ = 20
	IRQ_LPCMP1                  irq.IRQ = 21
	IRQ_RTC                     irq.IRQ = 22
	IRQ_INTMUX1_0               irq.IRQ = 23
	IRQ_INTMUX1_1               irq.IRQ = 24
	IRQ_INTMUX1_2               irq.IRQ = 25
	IRQ_INTMUX1_3               irq.IRQ = 26
	IRQ_INTMUX1_4               irq.IRQ = 27
	IRQ_INTMUX1_5               irq.IRQ = 28
	IRQ_INTMUX1_6               irq.IRQ = 29
	IRQ_INTMUX1_7               irq.IRQ = 30
	IRQ_EWM                     irq.IRQ = 31
	IRQ_FTFE_Command_Complete   irq.IRQ = 32
	IRQ_FTFE_Read_Collision     irq.IRQ = 33
	IRQ_SPM                     irq.IRQ = 34
	IRQ_SCG                     irq.IRQ = 35
	IRQ_LPTMR0                  irq.IRQ = 36
	IRQ_LPTMR1                  irq.IRQ = 37
	IRQ_TPM0                    irq.IRQ = 38
	IRQ_TPM1                    irq.IRQ = 39
	IRQ_TPM2                    irq.IRQ = 40
	IRQ_EMVSIM0                 irq.IRQ = 41
	IRQ_FLEXIO0                 irq.IRQ = 42
	IRQ_LPI2C0                  irq.IRQ = 43
	IRQ_LPI2C1                  irq.IRQ = 44
	IRQ_LPI2C2                  irq.IRQ = 45
	IRQ_I2S0                    irq.IRQ = 46
	IRQ_USDHC0                  irq.IRQ = 47
	IRQ_LPSPI0                  irq.IRQ = 48
	IRQ_LPSPI1                  irq.IRQ = 49
	IRQ_LPSPI2                  irq.IRQ = 50
	IRQ_LPUART0                 irq.IRQ = 51
	IRQ_LPUART1                 irq.IRQ = 52
	IRQ_LPUART2                 irq.IRQ = 53
	IRQ_USB0                    irq.IRQ = 54
	IRQ_PORTA                   irq.IRQ = 55
	IRQ_PORTB                   irq.IRQ = 56
	IRQ_PORTC                   irq.IRQ = 57
	IRQ_PORTD                   irq.IRQ = 58
	IRQ_ADC0                    irq.IRQ = 59
	IRQ_LPCMP0                  irq.IRQ = 60
	IRQ_LPDAC0                  irq.IRQ = 61
)

const (
	// IRQ_COUNT is the number of device vectors, reserved ones included.
	IRQ_COUNT = 64

	// INTMUX_IRQ_START is the first vector multiplexed by INTMUX1.
	INTMUX_IRQ_START irq.IRQ = 32
)

// Vectors is the vector table of the zero-riscy core. Device vectors
// without a source are Reserved placeholders.
var Vectors = irq.MustTable(
	[]irq.Vector{
		{IRQ: IRQ_Reset, Name: "Reset", Description: "reset"},
		{IRQ: IRQ_IllegalInstruction, Name: "IllegalInstruction", Description: "illegal instruction"},
		{IRQ: IRQ_Ecall, Name: "Ecall", Description: "environment call"},
		{IRQ: IRQ_LoadStoreError, Name: "LoadStoreError", Description: "load/store unit error"},
	},
	[]irq.Vector{
		{IRQ: IRQ_DMA1_04, Name: "DMA1_04", Description: "DMA1 channel 0 and 4 transfer complete"},
		{IRQ: IRQ_DMA1_15, Name: "DMA1_15", Description: "DMA1 channel 1 and 5 transfer complete"},
		{IRQ: IRQ_DMA1_26, Name: "DMA1_26", Description: "DMA1 channel 2 and 6 transfer complete"},
		{IRQ: IRQ_DMA1_37, Name: "DMA1_37", Description: "DMA1 channel 3 and 7 transfer complete"},
		{IRQ: IRQ_DMA1_Error, Name: "DMA1_Error", Description: "DMA1 error"},
		{IRQ: IRQ_CMC1, Name: "CMC1", Description: "core mode controller"},
		{IRQ: IRQ_LLWU1, Name: "LLWU1", Description: "low leakage wakeup unit"},
		{IRQ: IRQ_MUB, Name: "MUB", Description: "messaging unit, processor B side"},
		{IRQ: IRQ_WDOG1, Name: "WDOG1", Description: "watchdog"},
		{IRQ: IRQ_CAU3_Task_Complete, Name: "CAU3_Task_Complete", Description: "cryptographic acceleration unit task complete"},
		{IRQ: IRQ_CAU3_Security_Violation, Name: "CAU3_Security_Violation", Description: "cryptographic acceleration unit security violation"},
		{IRQ: IRQ_TRNG, Name: "TRNG", Description: "true random number generator"},
		{IRQ: IRQ_LPIT1, Name: "LPIT1", Description: "low power periodic interrupt timer"},
		{IRQ: IRQ_LPTMR2, Name: "LPTMR2", Description: "low power timer"},
		{IRQ: IRQ_TPM3, Name: "TPM3", Description: "timer/PWM"},
		{IRQ: IRQ_LPI2C3, Name: "LPI2C3", Description: "low power I2C"},
		{IRQ: IRQ_RF0_0, Name: "RF0_0", Description: "radio"},
		{IRQ: IRQ_RF0_1, Name: "RF0_1", Description: "radio"},
		{IRQ: IRQ_LPSPI3, Name: "LPSPI3", Description: "low power SPI"},
		{IRQ: IRQ_LPUART3, Name: "LPUART3", Description: "low power UART"},
		{IRQ: IRQ_PORTE, Name: "PORTE", Description: "port E pin detect"},
		{IRQ: IRQ_LPCMP1, Name: "LPCMP1", Description: "low power comparator"},
		{IRQ: IRQ_RTC, Name: "RTC", Description: "real time clock"},
		{IRQ: IRQ_INTMUX1_0, Name: "INTMUX1_0", Description: "INTMUX1 channel 0"},
		{IRQ: IRQ_INTMUX1_1, Name: "INTMUX1_1", Description: "INTMUX1 channel 1"},
		{IRQ: IRQ_INTMUX1_2, Name: "INTMUX1_2", Description: "INTMUX1 channel 2"},
		{IRQ: IRQ_INTMUX1_3, Name: "INTMUX1_3", Description: "INTMUX1 channel 3"},
		{IRQ: IRQ_INTMUX1_4, Name: "INTMUX1_4", Description: "INTMUX1 channel 4"},
		{IRQ: IRQ_INTMUX1_5, Name: "INTMUX1_5", Description: "INTMUX1 channel 5"},
		{IRQ: IRQ_INTMUX1_6, Name: "INTMUX1_6", Description: "INTMUX1 channel 6"},
		{IRQ: IRQ_INTMUX1_7, Name: "INTMUX1_7", Description: "INTMUX1 channel 7"},
		{IRQ: IRQ_EWM, Name: "EWM", Description: "external watchdog monitor"},
		{IRQ: IRQ_FTFE_Command_Complete, Name: "FTFE_Command_Complete", Description: "flash command complete"},
		{IRQ: IRQ_FTFE_Read_Collision, Name: "FTFE_Read_Collision", Description: "flash read collision"},
		{IRQ: IRQ_SPM, Name: "SPM", Description: "system power module"},
		{IRQ: IRQ_SCG, Name: "SCG", Description: "system clock generator"},
		{IRQ: IRQ_LPTMR0, Name: "LPTMR0", Description: "low power timer"},
		{IRQ: IRQ_LPTMR1, Name: "LPTMR1", Description: "low power timer"},
		{IRQ: IRQ_TPM0, Name: "TPM0", Description: "timer/PWM"},
		{IRQ: IRQ_TPM1, Name: "TPM1", Description: "timer/PWM"},
		{IRQ: IRQ_TPM2, Name: "TPM2", Description: "timer/PWM"},
		{IRQ: IRQ_EMVSIM0, Name: "EMVSIM0", Description: "EMV smart card interface"},
		{IRQ: IRQ_FLEXIO0, Name: "FLEXIO0", Description: "flexible IO"},
		{IRQ: IRQ_LPI2C0, Name: "LPI2C0", Description: "low power I2C"},
		{IRQ: IRQ_LPI2C1, Name: "LPI2C1", Description: "low power I2C"},
		{IRQ: IRQ_LPI2C2, Name: "LPI2C2", Description: "low power I2C"},
		{IRQ: IRQ_I2S0, Name: "I2S0", Description: "synchronous audio interface"},
		{IRQ: IRQ_USDHC0, Name: "USDHC0", Description: "SD host controller"},
		{IRQ: IRQ_LPSPI0, Name: "LPSPI0", Description: "low power SPI"},
		{IRQ: IRQ_LPSPI1, Name: "LPSPI1", Description: "low power SPI"},
		{IRQ: IRQ_LPSPI2, Name: "LPSPI2", Description: "low power SPI"},
		{IRQ: IRQ_LPUART0, Name: "LPUART0", Description: "low power UART"},
		{IRQ: IRQ_LPUART1, Name: "LPUART1", Description: "low power UART"},
		{IRQ: IRQ_LPUART2, Name: "LPUART2", Description: "low power UART"},
		{IRQ: IRQ_USB0, Name: "USB0", Description: "USB full speed"},
		{IRQ: IRQ_PORTA, Name: "PORTA", Description: "port A pin detect"},
		{IRQ: IRQ_PORTB, Name: "PORTB", Description: "port B pin detect"},
		{IRQ: IRQ_PORTC, Name: "PORTC", Description: "port C pin detect"},
		{IRQ: IRQ_PORTD, Name: "PORTD", Description: "port D pin detect"},
		{IRQ: IRQ_ADC0, Name: "ADC0", Description: "low power ADC"},
		{IRQ: IRQ_LPCMP0, Name: "LPCMP0", Description: "low power comparator"},
		{IRQ: IRQ_LPDAC0, Name: "LPDAC0", Description: "low power DAC"},
	},
	IRQ_COUNT,
)

// INTMUXSource returns the INTMUX1 input that device vector n is routed to.
// It reports false for vectors wired to the core directly and for
// placeholders.
func INTMUXSource(n irq.IRQ) (int, bool) {
	if n < INTMUX_IRQ_START || !Vectors.Assigned(n) {
		return 0, false
	}
	return int(n - INTMUX_IRQ_START), true
}
